package manifest

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the manifest whenever the file changes, calling onReload
// with the fresh manifest or the load error. Intended for development;
// production deployments load once at startup.
//
// Watch blocks until ctx is cancelled:
//
//	go manifest.Watch(ctx, "assets.yaml", func(m *manifest.Manifest, err error) {
//	    if err != nil {
//	        log.Printf("manifest reload failed: %v", err)
//	        return
//	    }
//	    app.SetManifest(m)
//	})
func Watch(ctx context.Context, path string, onReload func(*Manifest, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				onReload(LoadFile(path))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onReload(nil, err)
		}
	}
}
