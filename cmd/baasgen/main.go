package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	baas "github.com/Angies2/baas-sdk-go"
	"github.com/Angies2/baas-sdk-go/apigen"
	"github.com/Angies2/baas-sdk-go/authcode"
)

type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate client operations from the swagger document."`
	Routes   RoutesCmd   `cmd:"" help:"Print the operations as YAML grouped by tag."`
	Sign     SignCmd     `cmd:"" help:"Compute an authCode for a request."`

	Verbose bool `help:"Log debug output." short:"v"`
}

type SourceFlags struct {
	DocURL  string        `help:"Online swagger document." default:"http://demo.heclouds.com/baasapi/v2/api-docs?group=baas%20demo" name:"doc-url"`
	DocFile string        `help:"Local swagger document used when the online one fails." default:"api/swagger_doc.json" name:"doc-file" type:"path"`
	Timeout time.Duration `help:"Timeout of the online fetch." default:"10s"`
}

func (f *SourceFlags) source() apigen.Source {
	return apigen.Source{URL: f.DocURL, File: f.DocFile}
}

func (f *SourceFlags) client() *http.Client {
	return &http.Client{Timeout: f.Timeout}
}

type GenerateCmd struct {
	SourceFlags `embed:""`

	Output   string `help:"Output Go file." default:"client_gen.go" short:"o" type:"path"`
	Package  string `help:"Package name. Defaults to the package in the output directory." short:"p"`
	Protocol string `help:"Protocol used when the document host has none." default:"http"`
	Host     string `help:"Host used when the document has none." default:"demo.heclouds.com"`
	BasePath string `help:"Base path used when the document has no host." default:"/baasapi" name:"base-path"`
	Routes   string `help:"Also write a routes YAML file." type:"path"`
	CA       string `help:"CA certificate copied next to the output." type:"path" name:"ca"`
}

func (c *GenerateCmd) Run(logger *zap.Logger) error {
	return apigen.Generate(context.Background(), apigen.Config{
		Source: c.source(),
		Defaults: apigen.Defaults{
			Protocol: c.Protocol,
			Host:     c.Host,
			BasePath: c.BasePath,
		},
		Output:     c.Output,
		Package:    c.Package,
		RoutesYAML: c.Routes,
		CA:         c.CA,
		HTTPClient: c.client(),
	}, logger)
}

type RoutesCmd struct {
	SourceFlags `embed:""`
}

func (c *RoutesCmd) Run(logger *zap.Logger) error {
	doc, err := apigen.LoadDocument(context.Background(), c.client(), c.source(), logger)
	if err != nil {
		return err
	}
	model, err := apigen.BuildModel(doc, "", "")
	if err != nil {
		return err
	}
	return apigen.WriteRoutesYAML(os.Stdout, model)
}

type SignCmd struct {
	Method    string   `arg:"" help:"HTTP method."`
	Params    []string `arg:"" optional:"" help:"Signed path and query parameters as key=value."`
	Nonce     string   `help:"Nonce. Generated when empty."`
	Timestamp int64    `help:"Timestamp in milliseconds. Current time when zero."`
	EnvFile   []string `help:".env files to load." default:".env" name:"env-file"`
}

func (c *SignCmd) Run(logger *zap.Logger) error {
	cfg, err := baas.LoadConfigFromEnv(c.EnvFile...)
	if err != nil {
		return err
	}
	params := make(map[string]any, len(c.Params))
	for _, kv := range c.Params {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("parameter %q is not key=value", kv)
		}
		params[k] = v
	}
	res, err := authcode.Generate(authcode.Input{
		AccessID:  cfg.AccessID,
		AccessKey: cfg.AccessKey,
		Method:    c.Method,
		Params:    params,
		Nonce:     c.Nonce,
		Timestamp: c.Timestamp,
	})
	if err != nil {
		return err
	}
	logger.Debug("signed", zap.String("prefix", res.Prefix), zap.String("content", res.Content))
	fmt.Println(res.AuthCode)
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("baasgen"),
		kong.Description("Code generator and signing helper for the BaaS API client."),
		kong.UsageOnError(),
	)

	logConfig := zap.NewDevelopmentConfig()
	if !cli.Verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := logConfig.Build()
	ctx.FatalIfErrorf(err)
	defer func() {
		_ = logger.Sync()
	}()

	err = ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
