package main

import (
	"net/http"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/Angies2/baas-sdk-go/baastest"
)

type CLI struct {
	Listen    string            `help:"Listen address." default:"127.0.0.1:8080"`
	Prefix    string            `help:"Path prefix of the API." default:"/baasapi"`
	AccessID  string            `help:"Accepted access ID." default:"demo-id" name:"access-id"`
	AccessKey string            `help:"Access key of the access ID." default:"demo-key" name:"access-key"`
	AppToken  string            `help:"Application token required at login." default:"demo-app" name:"app-token"`
	User      map[string]string `help:"Users as name=password." default:"demo=demo"`
	MaxSkew   time.Duration     `help:"Largest accepted authCode clock skew." default:"5m" name:"max-skew"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("baas-server"),
		kong.Description("Local BaaS server verifying authCodes, for trying the client."),
	)

	logger, err := zap.NewDevelopment()
	ctx.FatalIfErrorf(err)
	defer func() {
		_ = logger.Sync()
	}()

	server := baastest.New(baastest.Config{
		AccessID:  cli.AccessID,
		AccessKey: cli.AccessKey,
		AppToken:  cli.AppToken,
		Users:     cli.User,
		MaxSkew:   cli.MaxSkew,
		Logger:    logger,
	})

	mux := http.NewServeMux()
	mux.Handle(cli.Prefix+"/", http.StripPrefix(cli.Prefix, server))

	logger.Info("listening",
		zap.String("baseUrl", "http://"+cli.Listen+cli.Prefix),
		zap.String("accessId", cli.AccessID),
	)
	ctx.FatalIfErrorf(http.ListenAndServe(cli.Listen, mux))
}
