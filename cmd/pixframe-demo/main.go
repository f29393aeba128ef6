// Command pixframe-demo renders one frame with a few callbacks and prints
// the buffer to stdout as a grid of packed colors.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gogpu/pixframe"
	"github.com/gogpu/pixframe/text"
)

func main() {
	buf, err := pixframe.NewBuffer(pixframe.V(24, 16))
	if err != nil {
		log.Fatalf("Failed to create buffer: %v", err)
	}
	defer buf.Release()

	f, err := pixframe.NewFrame(buf)
	if err != nil {
		log.Fatalf("Failed to create frame: %v", err)
	}
	defer f.Release()

	if _, err := f.Push(drawBorder, nil); err != nil {
		log.Fatalf("Failed to push callback: %v", err)
	}
	if _, err := f.PushData(drawSwatch, []byte{10, 20, 30}); err != nil {
		log.Fatalf("Failed to push callback: %v", err)
	}
	if _, err := f.Push(text.Callback(pixframe.V(12, 2), "Hi", pixframe.White), nil); err != nil {
		log.Fatalf("Failed to push callback: %v", err)
	}

	f.Update()

	fmt.Println("It Works!")
	printBuffer(buf)
}

func drawBorder(f *pixframe.Frame, _ *pixframe.Param) {
	size := f.Selection().Size
	f.FillRect(pixframe.V(0, 0), pixframe.V(size.X, 1), pixframe.Blue)
	f.FillRect(pixframe.V(0, size.Y-1), pixframe.V(size.X, 1), pixframe.Blue)
}

// drawSwatch fills a square with the RGB triple carried by its param.
func drawSwatch(f *pixframe.Frame, p *pixframe.Param) {
	rgb := p.Bytes()
	if len(rgb) < 3 {
		return
	}
	f.FillRect(pixframe.V(2, 3), pixframe.V(8, 8), pixframe.RGB(rgb[0], rgb[1], rgb[2]))
}

func printBuffer(b *pixframe.Buffer) {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%06X", uint32(b.PixelAt(x, y)))
		}
		sb.WriteByte('\n')
	}
	if _, err := os.Stdout.WriteString(sb.String()); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
