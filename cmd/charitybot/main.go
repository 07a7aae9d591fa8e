package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/pawfund/charitybot/bot"
	"github.com/pawfund/charitybot/core/bootstrap"
	"github.com/pawfund/charitybot/core/buildinfo"
	corecmd "github.com/pawfund/charitybot/core/cmd"
	coreconfig "github.com/pawfund/charitybot/core/config"
)

type configCarrier struct{ cfg *coreconfig.Config }

func (c configCarrier) CoreConfig() *coreconfig.Config { return c.cfg }

func main() {
	// token.env mirrors the original deployment layout; both files are optional.
	for _, f := range []string{"token.env", ".env"} {
		_ = godotenv.Load(f)
	}

	log.Printf("charitybot %s (%s)", buildinfo.Version, buildinfo.Commit)

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return configCarrier{cfg: cfg}, nil
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg := carrier.CoreConfig()
			res, err := bootstrap.Run(bootstrap.Options{Config: cfg})
			if err != nil {
				return nil, err
			}
			return bot.New(cfg, res.Catalog), nil
		},
	})
	if err != nil {
		log.Fatalf("charitybot: %v", err)
	}
}
