package commands

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
)

const allocCount = 10000

// GCStatsHandlerFactory creates handlers that report process memory usage.
type GCStatsHandlerFactory struct{}

func (f *GCStatsHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)

		var usage float64
		if ms.Sys > 0 {
			usage = float64(ms.HeapAlloc) / float64(ms.Sys) * 100
		}

		lines := []string{
			"=== Memory statistics ===",
			fmt.Sprintf("Heap in use: %s (%d bytes)", humanize.IBytes(ms.HeapAlloc), ms.HeapAlloc),
			fmt.Sprintf("Heap idle: %s (%d bytes)", humanize.IBytes(ms.HeapIdle), ms.HeapIdle),
			fmt.Sprintf("Obtained from OS: %s (%d bytes)", humanize.IBytes(ms.Sys), ms.Sys),
			fmt.Sprintf("GC cycles: %d", ms.NumGC),
			fmt.Sprintf("Heap usage: %.1f%%", usage),
		}
		_, err := fmt.Fprintln(cmdCtx.Out, strings.Join(lines, "\n"))
		return err
	}, nil
}

// AllocHandlerFactory creates handlers that allocate throwaway garbage and
// then run gc-stats.
type AllocHandlerFactory struct {
	handler *Handler
}

func NewAllocHandlerFactory(h *Handler) *AllocHandlerFactory {
	return &AllocHandlerFactory{handler: h}
}

func (f *AllocHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		fmt.Fprintln(cmdCtx.Out, "Allocating memory for the GC demonstration...")

		tmp := make([]string, 0, allocCount)
		for i := range allocCount {
			tmp = append(tmp, fmt.Sprintf("Temporary string %d for the garbage collection demo", i))
		}
		fmt.Fprintf(cmdCtx.Out, "Created %d objects\n", len(tmp))
		fmt.Fprintln(cmdCtx.Out, "Memory after allocation:")

		if stats, ok := f.handler.Lookup("gc-stats"); ok {
			if err := stats(ctx, cmdCtx); err != nil {
				return err
			}
		}
		runtime.KeepAlive(tmp)

		_, err := fmt.Fprintln(cmdCtx.Out, "The objects are ready for garbage collection")
		return err
	}, nil
}
