package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	Enabled  bool   `toml:"enabled"`
	ApiToken string `toml:"api_token"`
}

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Game struct {
	DBPath string `toml:"db_path"`
	Seed   int64  `toml:"seed"`
}

type Config struct {
	Server Server
	Game   Game
	TgBot  TgBot
}

// New reads configs/server.toml and configs/game.toml. Environment
// variables win over file values for the secrets and paths that differ per
// deployment.
func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var gameCfg Game
	_, err = toml.DecodeFile("configs/game.toml", &gameCfg)
	if err != nil {
		return Config{}, err
	}
	if path := os.Getenv("GRIDIRON_DB"); path != "" {
		gameCfg.DBPath = path
	}
	if seed := os.Getenv("GRIDIRON_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			gameCfg.Seed = v
		}
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile("configs/bot.toml", &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.ApiToken = token
	}

	return Config{
		Server: serverCfg,
		Game:   gameCfg,
		TgBot:  tgBotCfg,
	}, nil
}
