package out

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"grindlock/internal/modules/notify/adapter/out/rpc"
	"grindlock/internal/modules/notify/domain"
	notifyout "grindlock/internal/modules/notify/port/out"
)

const (
	pluginStartTimeout = 3 * time.Second
	pluginCallTimeout  = 5 * time.Second
)

// PluginSink delivers a notification through an external notifier plugin.
// The plugin process is started per delivery and killed afterwards;
// notifications are rare enough that keeping plugins resident is not worth
// the lifecycle bookkeeping.
type PluginSink struct {
	manifest domain.Manifest
}

func NewPluginSink(manifest domain.Manifest) *PluginSink {
	return &PluginSink{manifest: manifest}
}

var _ notifyout.Sink = (*PluginSink)(nil)

func (s *PluginSink) Name() string {
	return s.manifest.Name
}

func (s *PluginSink) Deliver(ctx context.Context, notification domain.Notification) error {
	if err := checksumMatches(s.manifest.Binary, s.manifest.SHA256); err != nil {
		return err
	}
	client, closeFn, err := s.connect()
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx)
	defer cancel()
	_, err = client.Notify(callCtx, &rpc.NotifyRequest{
		Kind:    notification.Kind,
		Title:   notification.Title,
		Message: notification.Message,
	})
	if err != nil {
		return fmt.Errorf("plugin %s notify: %w", s.manifest.Name, err)
	}
	return nil
}

func (s *PluginSink) connect() (rpc.NotifierClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  rpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          rpc.PluginMap(nil),
		Cmd:              exec.Command(s.manifest.Binary),
		Managed:          true,
		StartTimeout:     pluginStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start plugin %s: %w", s.manifest.Name, err)
	}
	raw, err := rpcClient.Dispense(rpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense plugin %s: %w", s.manifest.Name, err)
	}
	typed, ok := raw.(rpc.NotifierClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("plugin rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, pluginCallTimeout)
}

func checksumMatches(path, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}
