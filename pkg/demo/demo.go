// Package demo drives a scripted pipeline against a task tree: parallel
// shard generation, packing into a compressed archive, unpacking, and
// verification. It exists so the renderer can be watched doing real work.
package demo

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"tasktree/pkg/archive"
	"tasktree/pkg/tasktree"
)

const (
	shardCount = 8
	shardSize  = 256 << 10
)

// Options adjust a pipeline run.
type Options struct {
	// Tamper corrupts one extracted shard so the verification stage
	// demonstrates the failure glyph.
	Tamper bool
}

// Run executes the pipeline in workdir, reporting progress on tree. Stage
// tasks nest under one root task; every stage that fails resolves its task
// with the failure glyph before the error propagates.
func Run(ctx context.Context, tree *tasktree.TaskTree, workdir string, opts Options) error {
	tree.Start("building payload")

	shardDir := filepath.Join(workdir, "shards")
	total, err := generate(ctx, tree, shardDir)
	if err != nil {
		tree.Fail("payload failed: %v", err)
		return err
	}

	payload := filepath.Join(workdir, "payload.tar.zst")
	if err := pack(tree, shardDir, payload); err != nil {
		tree.Fail("payload failed: %v", err)
		return err
	}

	unpackDir := filepath.Join(workdir, "unpacked")
	if err := unpack(tree, payload, unpackDir); err != nil {
		tree.Fail("payload failed: %v", err)
		return err
	}

	if err := verify(tree, unpackDir, opts.Tamper); err != nil {
		tree.Fail("payload failed: %v", err)
		return err
	}

	tree.Pass("payload done (%s)", humanize.Bytes(uint64(total)))
	return nil
}

// generate writes the shard files in parallel and returns the total byte
// count.
func generate(ctx context.Context, tree *tasktree.TaskTree, dir string) (int64, error) {
	tree.Start("generating %d shards", shardCount)

	if err := os.MkdirAll(dir, 0755); err != nil {
		tree.Fail("creating shard dir: %v", err)
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < shardCount; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := shardPath(dir, i)
			if err := os.WriteFile(path, shardData(i), 0644); err != nil {
				return fmt.Errorf("writing shard %d: %w", i, err)
			}
			slog.Debug("Generated shard", "index", i, "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tree.Fail("generation failed: %v", err)
		return 0, err
	}

	total := int64(shardCount) * shardSize
	tree.Pass("generated %s", humanize.Bytes(uint64(total)))
	return total, nil
}

func pack(tree *tasktree.TaskTree, dir, payload string) error {
	tree.Start("packing %s", filepath.Base(payload))

	files := make(map[string][]byte, shardCount)
	for i := 0; i < shardCount; i++ {
		data, err := os.ReadFile(shardPath(dir, i))
		if err != nil {
			tree.Fail("reading shard %d: %v", i, err)
			return err
		}
		files[filepath.Base(shardPath(dir, i))] = data
	}

	if err := archive.Create(payload, files); err != nil {
		tree.Fail("packing failed: %v", err)
		return err
	}

	info, err := os.Stat(payload)
	if err != nil {
		tree.Fail("stat payload: %v", err)
		return err
	}
	slog.Debug("Packed payload", "path", payload, "bytes", info.Size())
	tree.Pass("packed %s", humanize.Bytes(uint64(info.Size())))
	return nil
}

func unpack(tree *tasktree.TaskTree, payload, dest string) error {
	tree.Start("unpacking %s", filepath.Base(payload))

	if err := archive.Extract(payload, dest); err != nil {
		tree.Fail("unpacking failed: %v", err)
		return err
	}

	slog.Debug("Unpacked payload", "dest", dest)
	tree.Pass("unpacked %d shards", shardCount)
	return nil
}

func verify(tree *tasktree.TaskTree, dir string, tamper bool) error {
	tree.Start("verifying %d shards", shardCount)

	if tamper {
		path := shardPath(dir, 0)
		slog.Debug("Tampering with shard", "path", path)
		if err := os.WriteFile(path, []byte("corrupted"), 0644); err != nil {
			tree.Fail("tampering failed: %v", err)
			return err
		}
	}

	for i := 0; i < shardCount; i++ {
		data, err := os.ReadFile(shardPath(dir, i))
		if err != nil {
			tree.Fail("reading shard %d: %v", i, err)
			return err
		}
		if !bytes.Equal(data, shardData(i)) {
			err := fmt.Errorf("shard %d does not match its source", i)
			tree.Fail("%v", err)
			return err
		}
	}

	tree.Pass("verified %d shards", shardCount)
	return nil
}

func shardPath(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("shard-%02d.bin", i))
}

// shardData returns the deterministic content of shard i.
func shardData(i int) []byte {
	data := make([]byte, shardSize)
	for j := range data {
		data[j] = byte((j*7 + i*13) % 251)
	}
	return data
}
