package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	baas "github.com/Angies2/baas-sdk-go"
	"github.com/Angies2/baas-sdk-go/internal/shared"
)

type CLI struct {
	EnvFile   []string      `help:".env files with BAAS_* variables." default:".env" name:"env-file"`
	AppToken  string        `help:"Application token." default:"demo-app" name:"app-token"`
	LoginName string        `help:"Login name." default:"demo" name:"login-name"`
	Password  string        `help:"Password." default:"demo"`
	Device    string        `help:"Name of a device to add before listing."`
	Timeout   time.Duration `help:"Timeout of the whole run." default:"30s"`
}

type device struct {
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
	Enabled    bool   `json:"enabled"`
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("baas-client"),
		kong.Description("Logs in to a BaaS endpoint and lists the devices."),
	)

	logger, err := zap.NewDevelopment()
	kctx.FatalIfErrorf(err)
	defer func() {
		_ = logger.Sync()
	}()

	kctx.FatalIfErrorf(run(cli, logger))
}

func run(cli *CLI, logger *zap.Logger) error {
	cfg, err := baas.LoadConfigFromEnv(cli.EnvFile...)
	if err != nil {
		return err
	}
	opts := []baas.Option{}
	if cfg.Debug {
		opts = append(opts, baas.WithLogger(logger))
	}
	client, err := baas.NewClient(*cfg, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	res, err := client.LoginUsingPOST(ctx, baas.Params{
		"appToken":  cli.AppToken,
		"loginName": cli.LoginName,
		"password":  cli.Password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	session := res.SessionToken()
	if session == "" {
		return errors.New("login returned no session token")
	}

	if cli.Device != "" {
		_, err := client.AddDeviceUsingPOST(ctx, baas.Params{
			"sessionToken": session,
			"addDevice":    map[string]any{"deviceName": cli.Device},
		})
		if err != nil {
			return fmt.Errorf("failed to add device: %w", err)
		}
	}

	res, err = client.GetDevicesListUsingGET(ctx, baas.Params{
		"sessionToken": session,
		"pageNum":      1,
		"pageSize":     50,
	})
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}
	var page shared.Envelope[shared.Page[device]]
	if err := res.Decode(&page); err != nil {
		return err
	}
	logger.Info("devices", zap.Int("total", page.Data.Total))
	for _, d := range page.Data.List {
		fmt.Printf("%s\t%s\tenabled=%t\n", d.DeviceID, d.DeviceName, d.Enabled)
	}
	return nil
}
