// Package imager fetches the image bytes behind the asset references a
// conversion produced. Resolution is two-phase: the file images API resolves
// fills by image reference, then the render API rasterizes whatever is left
// by node ID. Downloads run concurrently under a small semaphore.
package imager

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/hellenic-development/figma-codegen/pkg/emitter"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

const maxNodesPerRequest = 100
const maxParallelDownloads = 5

// Emitted markup references exactly one png per image node, so the render
// fallback is pinned to that.
const renderFormat = "png"
const renderScale = 1

// Result holds fetched image bytes keyed by archive path.
type Result struct {
	Images map[string][]byte
	Errors []error // non-fatal per-image failures
}

// Fetch downloads the bytes for every asset reference of a conversion. A
// failing file images API degrades to the render fallback for all assets;
// individual download failures are collected, not fatal. The only fatal error
// is a render API request that fails outright.
func Fetch(ctx context.Context, client *figma.Client, fileKey string, assets []emitter.Asset) (*Result, error) {
	result := &Result{Images: make(map[string][]byte, len(assets))}
	if len(assets) == 0 {
		return result, nil
	}

	// Phase 1: resolve download URLs by image reference.
	urls := make(map[string]string, len(assets)) // archive path -> download URL
	var unresolved []emitter.Asset

	fileImages, err := client.GetFileImages(ctx, fileKey)
	if err != nil {
		result.Errors = append(result.Errors, errors.Wrap(err, "file images API"))
		unresolved = assets
	} else {
		for _, a := range assets {
			if url := fileImages.Meta.Images[a.ImageRef]; a.ImageRef != "" && url != "" {
				urls[a.Path] = url
			} else {
				unresolved = append(unresolved, a)
			}
		}
	}

	// Phase 2: render whatever the file images API could not resolve.
	if len(unresolved) > 0 {
		byNode := make(map[string]emitter.Asset, len(unresolved))
		ids := make([]string, 0, len(unresolved))
		for _, a := range unresolved {
			if a.NodeID == "" {
				result.Errors = append(result.Errors, errors.Newf("asset %s carries no node ID to render", a.Path))
				continue
			}
			byNode[a.NodeID] = a
			ids = append(ids, a.NodeID)
		}

		for i := 0; i < len(ids); i += maxNodesPerRequest {
			end := i + maxNodesPerRequest
			if end > len(ids) {
				end = len(ids)
			}

			imgResp, err := client.GetImages(ctx, fileKey, ids[i:end], renderFormat, renderScale)
			if err != nil {
				return nil, errors.Wrap(err, "render images")
			}
			for nodeID, url := range imgResp.Images {
				a, ok := byNode[nodeID]
				if !ok {
					continue
				}
				if url == "" {
					result.Errors = append(result.Errors, errors.Newf("no image URL returned for node %s", nodeID))
					continue
				}
				urls[a.Path] = url
			}
		}
	}

	// Download concurrently with a semaphore.
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallelDownloads)
	var mu sync.Mutex

	for path, url := range urls {
		wg.Add(1)
		go func(path, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			data, err := client.Download(ctx, url)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, errors.Wrapf(err, "download %s", path))
				return
			}
			result.Images[path] = data
		}(path, url)
	}
	wg.Wait()

	return result, nil
}

// Merge inserts fetched image bytes into an emitted file set, following the
// asset order so the archive layout stays deterministic. Returns the number
// of members added.
func Merge(files *emitter.FileMap, assets []emitter.Asset, images map[string][]byte) int {
	added := 0
	for _, a := range assets {
		if data, ok := images[a.Path]; ok {
			files.Set(a.Path, data)
			added++
		}
	}
	return added
}
