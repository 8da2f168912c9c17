package webpath

const (
	Home = "/"

	Api             = "/api"
	ApiState        = Api + "/state"
	ApiNewCareer    = Api + "/career"
	ApiAdvance      = Api + "/advance"
	ApiSimOffseason = Api + "/sim-offseason"
	ApiRankings     = Api + "/rankings"
	ApiTrain        = Api + "/train"
	ApiSpendSkill   = Api + "/player/skill"
	ApiScout        = Api + "/teams/:id/scout"
	ApiSignRecruit  = Api + "/recruits/:id/sign"
	ApiFacility     = Api + "/facilities/:name"
	ApiTransfer     = Api + "/transfers/:teamId/accept"
	ApiInboxRead    = Api + "/inbox/:id/read"
	ApiStartGame    = Api + "/game/start"
	ApiCallPlay     = Api + "/game/play"
	ApiCheats       = Api + "/cheats"
	ApiSave         = Api + "/save"
	ApiLoad         = Api + "/load"
)

func Path() map[string]string {
	return map[string]string{
		"Home":         Home,
		"Api":          Api,
		"ApiState":     ApiState,
		"ApiNewCareer": ApiNewCareer,
		"ApiAdvance":   ApiAdvance,
		"ApiSim":       ApiSimOffseason,
		"ApiRankings":  ApiRankings,
	}
}
