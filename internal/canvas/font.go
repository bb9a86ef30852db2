package canvas

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zjrosen/sketchpad/internal/cachemanager"
	"github.com/zjrosen/sketchpad/internal/log"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error

	faces = cachemanager.NewReadThroughCache[text.Face, float64](
		cachemanager.NewInMemoryCacheManager[text.Face]("font-faces", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval),
		cachemanager.NoExpiration,
		loadFace,
	)
)

func source() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parsing embedded font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

func loadFace(px float64) (text.Face, error) {
	src, err := source()
	if err != nil {
		return nil, err
	}
	return src.Face(px), nil
}

// face returns the shared face for a pixel size, or nil when the embedded
// font cannot be loaded (text is then skipped).
func face(px float64) text.Face {
	if px <= 0 {
		return nil
	}
	key := strconv.FormatFloat(px, 'f', 2, 64)
	f, err := faces.Get(key, px)
	if err != nil {
		log.ErrorErr(log.CatRender, "font face unavailable", err, "size", key)
		return nil
	}
	return f
}
