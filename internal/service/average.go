package service

import (
	"image"
	"math"
	"runtime"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"theme-color-service/internal/model"
)

// SampleWidth is the width images are resampled to before averaging.
const SampleWidth = 50

// Span is a half-open range [Start, End) of linear pixel indices.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

type channelSum struct {
	r, g, b uint64
	n       int
}

func (s *channelSum) add(o channelSum) {
	s.r += o.r
	s.g += o.g
	s.b += o.b
	s.n += o.n
}

// SampleSize returns the dimensions an image of width x height is averaged at.
// Wider images are scaled to SampleWidth keeping the aspect ratio; narrower
// ones are used as they are.
func SampleSize(width, height int) (int, int) {
	if width <= SampleWidth {
		return width, height
	}
	h := int(math.Round(float64(height) * SampleWidth / float64(width)))
	return SampleWidth, maxInt(h, 1)
}

// Partition splits [0, total) into workers contiguous spans of total/workers
// indices each. The last span runs to total and absorbs the remainder.
func Partition(total, workers int) []Span {
	if workers < 1 {
		workers = 1
	}
	size := total / workers
	spans := make([]Span, workers)
	for i := range spans {
		start := i * size
		end := start + size
		if i == workers-1 {
			end = total
		}
		spans[i] = Span{Start: start, End: end}
	}
	return spans
}

// Average returns the mean colour of img after resampling it to SampleSize.
// workers <= 0 uses GOMAXPROCS. Channel means are rounded half away from zero.
func Average(img image.Image, workers int) (model.RGB, error) {
	if img == nil || img.Bounds().Empty() {
		return model.RGB{}, ErrEmptyImage
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sum := sumPixels(sample(img), workers)
	n := float64(sum.n)
	return model.RGB{
		R: channelMean(sum.r, n),
		G: channelMean(sum.g, n),
		B: channelMean(sum.b, n),
	}, nil
}

// ThemeColor is Average rendered with Hex.
func ThemeColor(img image.Image, workers int) (string, error) {
	c, err := Average(img, workers)
	if err != nil {
		return "", err
	}
	return Hex(c), nil
}

// Hex formats c as #RRGGBB with uppercase digits.
func Hex(c model.RGB) string {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return strings.ToUpper(col.Clamped().Hex())
}

func sample(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := SampleSize(b.Dx(), b.Dy())
	if w == b.Dx() && h == b.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

func sumPixels(img *image.NRGBA, workers int) channelSum {
	total := img.Bounds().Dx() * img.Bounds().Dy()
	workers = clampInt(workers, 1, maxInt(total, 1))

	var (
		mu  sync.Mutex
		agg channelSum
	)
	forEachSpan(Partition(total, workers), func(span Span) {
		part := sumSpan(img, span)
		mu.Lock()
		agg.add(part)
		mu.Unlock()
	})
	return agg
}

// forEachSpan runs fn for every span on its own goroutine and waits for all
// of them. A panic in a worker is re-raised on the calling goroutine once
// every worker has finished.
func forEachSpan(spans []Span, fn func(Span)) {
	var (
		wg        sync.WaitGroup
		once      sync.Once
		recovered interface{}
	)
	for _, span := range spans {
		wg.Add(1)
		go func(span Span) {
			defer wg.Done()
			defer func() {
				if v := recover(); v != nil {
					once.Do(func() { recovered = v })
				}
			}()
			fn(span)
		}(span)
	}
	wg.Wait()
	if recovered != nil {
		panic(recovered)
	}
}

func sumSpan(img *image.NRGBA, span Span) channelSum {
	b := img.Bounds()
	width := b.Dx()
	var s channelSum
	for p := span.Start; p < span.End; p++ {
		i := img.PixOffset(b.Min.X+p%width, b.Min.Y+p/width)
		s.r += uint64(img.Pix[i])
		s.g += uint64(img.Pix[i+1])
		s.b += uint64(img.Pix[i+2])
	}
	s.n = span.Len()
	return s
}

func channelMean(sum uint64, n float64) uint8 {
	return uint8(clampInt(int(math.Round(float64(sum)/n)), 0, 255))
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
