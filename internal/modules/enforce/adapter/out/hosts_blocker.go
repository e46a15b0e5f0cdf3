package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"grindlock/internal/modules/enforce/domain"
	enforceout "grindlock/internal/modules/enforce/port/out"
	apperrors "grindlock/internal/platform/errors"
	"grindlock/internal/platform/hostsfile"
)

const (
	startPrefix = "# grindlock:start"
	endMarker   = "# grindlock:end"
	loopback    = "127.0.0.1"
)

// HostsBlocker enforces the block through a managed section of the system
// hosts file. The section's start marker records the goal phase that
// activated the block, making the hosts file itself the durable record a
// later poll reads back. Lines outside the markers are never modified.
type HostsBlocker struct {
	path       string
	backupPath string
}

func NewHostsBlocker(path string) *HostsBlocker {
	return &HostsBlocker{path: path, backupPath: path + ".grindlock.bak"}
}

var _ enforceout.DomainBlocker = (*HostsBlocker)(nil)

func (b *HostsBlocker) Status(ctx context.Context) (enforceout.BlockStatus, error) {
	body, err := b.read()
	if err != nil {
		return enforceout.BlockStatus{}, err
	}
	block := hostsfile.Extract(body, startPrefix, endMarker)
	if !block.Present {
		return enforceout.BlockStatus{}, nil
	}
	status := enforceout.BlockStatus{Active: true, Phase: headerPhase(block.Header)}
	for _, entry := range block.Entries {
		if fields := strings.Fields(entry); len(fields) == 2 && fields[0] == loopback {
			status.Domains = append(status.Domains, fields[1])
		}
	}
	return status, nil
}

func (b *HostsBlocker) Activate(ctx context.Context, phase domain.GoalPhase, domains []string) error {
	body, err := b.read()
	if err != nil {
		return err
	}
	b.backupOnce(body)

	entries := make([]string, 0, 2*len(domains))
	for _, name := range domains {
		entries = append(entries, loopback+" "+name)
		if !strings.HasPrefix(name, "www.") {
			entries = append(entries, loopback+" www."+name)
		}
	}
	header := fmt.Sprintf("%s phase=%s", startPrefix, phase)
	return b.write(hostsfile.Replace(body, startPrefix, endMarker, header, entries))
}

func (b *HostsBlocker) Deactivate(ctx context.Context) error {
	body, err := b.read()
	if err != nil {
		return err
	}
	return b.write(hostsfile.Remove(body, startPrefix, endMarker))
}

func (b *HostsBlocker) read() (string, error) {
	body, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrPermission) {
		return "", fmt.Errorf("read %s: %w", b.path, apperrors.ErrPermissionDenied)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", b.path, err)
	}
	return string(body), nil
}

func (b *HostsBlocker) write(body string) error {
	err := os.WriteFile(b.path, []byte(body), 0o644)
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("write %s: %w", b.path, apperrors.ErrPermissionDenied)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", b.path, err)
	}
	return nil
}

// backupOnce snapshots the hosts file before this tool's first mutation.
// Best effort: a failed backup never stops enforcement.
func (b *HostsBlocker) backupOnce(body string) {
	if _, err := os.Stat(b.backupPath); err == nil {
		return
	}
	_ = os.WriteFile(b.backupPath, []byte(body), 0o644)
}

func headerPhase(header string) domain.GoalPhase {
	for _, field := range strings.Fields(header) {
		if value, ok := strings.CutPrefix(field, "phase="); ok {
			if phase, err := domain.ParseTriggerPhase(value); err == nil {
				return phase
			}
		}
	}
	return domain.PhaseIdle
}
