package main

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/hashicorp/go-plugin"

	"grindlock/internal/modules/notify/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *rpc.Empty) (*rpc.Metadata, error) {
	return &rpc.Metadata{
		Name:    "notify-desktop",
		Version: "1.0.0",
	}, nil
}

func (s *server) Notify(_ context.Context, in *rpc.NotifyRequest) (*rpc.NotifyResponse, error) {
	title := in.Title
	if title == "" {
		title = "grindlock"
	}
	if err := beeep.Notify(title, in.Message, ""); err != nil {
		return nil, fmt.Errorf("desktop notification: %w", err)
	}
	return &rpc.NotifyResponse{}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: rpc.HandshakeConfig,
		Plugins:         rpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
