package compiler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch compiles every dictionary once and then recompiles a revision each
// time its dictionary file is written or recreated. Compile errors are
// logged and do not stop watching. Watch returns when ctx is done.
func (c *Compiler) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// directories are watched so editors that save atomically still trigger
	byPath := make(map[string]int, len(c.cfg.Dictionaries))
	dirs := make(map[string]struct{})

	for i, d := range c.cfg.Dictionaries {
		p := filepath.Clean(d.Path)
		byPath[p] = i

		dir := filepath.Dir(p)
		if _, ok := dirs[dir]; ok {
			continue
		}

		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}

		dirs[dir] = struct{}{}
	}

	if _, err := c.Run(ctx); err != nil {
		c.logger.Error().Err(err).Msg("initial compilation failed")
	}

	c.logger.Info().Int("dictionaries", len(byPath)).Msg("watching dictionaries")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			i, ok := byPath[filepath.Clean(event.Name)]
			if !ok || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			c.logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("dictionary changed")

			if err := c.recompile(ctx, i); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}

				c.logger.Error().Err(err).Str("dictionary", event.Name).Msg("recompilation failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			c.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

func (c *Compiler) recompile(ctx context.Context, i int) error {
	res, err := c.CompileOne(ctx, c.cfg.Dictionaries[i])
	if err != nil {
		return err
	}

	return c.write(res)
}
