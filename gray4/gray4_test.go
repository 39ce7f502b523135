package gray4

import (
	"image"
	"image/color"
	"testing"
)

func TestGray4RGBA(t *testing.T) {
	tests := []struct {
		name string
		gray Gray4
		want uint32
	}{
		{"black", Black, 0x0000},
		{"mid gray", Gray4{Y: 8}, 0x8888},
		{"white", White, 0xFFFF},
		{"high nibble ignored", Gray4{Y: 0x5F}, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.gray.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)", r, g, b, a, tt.want, tt.want, tt.want)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  uint8
	}{
		{"passthrough", Gray4{Y: 7}, 7},
		{"black", color.Black, 0},
		{"white", color.White, 15},
		{"gray rgb", color.RGBA{0x88, 0x88, 0x88, 0xFF}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(Gray4)
			if got.Y != tt.want {
				t.Errorf("Model.Convert(%v).Y = %d, want %d", tt.input, got.Y, tt.want)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	for y := uint8(0); y < 16; y++ {
		if got := (Gray4{Y: y}).Inverse().Y; got != 15-y {
			t.Errorf("Gray4{%d}.Inverse().Y = %d, want %d", y, got, 15-y)
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantBytes  int
	}{
		{"tile 144x42", image.Rect(0, 0, 144, 42), false, 72, 3024},
		{"screen 144x168", image.Rect(0, 0, 144, 168), false, 72, 12096},
		{"offset rect", image.Rect(10, 20, 14, 22), false, 2, 4},
		{"empty", image.Rect(0, 0, 0, 0), false, 0, 0},
		{"odd width panics", image.Rect(0, 0, 5, 2), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r, tt.wantPanic)
				}
			}()

			img := New(tt.rect)
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if img.Bytes() != tt.wantBytes {
				t.Errorf("Bytes() = %d, want %d", img.Bytes(), tt.wantBytes)
			}
		})
	}
}

func TestNibblePacking(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 1))
	img.SetGray4(0, 0, Gray4{Y: 5})
	img.SetGray4(1, 0, Gray4{Y: 10})
	img.SetGray4(2, 0, Gray4{Y: 3})
	img.SetGray4(3, 0, Gray4{Y: 12})

	if img.Pix[0] != 0x5A {
		t.Errorf("Pix[0] = 0x%02X, want 0x5A", img.Pix[0])
	}
	if img.Pix[1] != 0x3C {
		t.Errorf("Pix[1] = 0x%02X, want 0x3C", img.Pix[1])
	}
}

func TestOddOriginPacking(t *testing.T) {
	img := New(image.Rect(1, 0, 3, 1))
	img.SetGray4(1, 0, Gray4{Y: 0xA})
	img.SetGray4(2, 0, Gray4{Y: 0x3})
	if img.Pix[0] != 0xA3 {
		t.Errorf("Pix[0] = 0x%02X, want 0xA3", img.Pix[0])
	}
}

func TestSetAndOutOfBounds(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.White)
	if got := img.Gray4At(1, 1); got != White {
		t.Errorf("Gray4At(1, 1) = %v, want %v", got, White)
	}

	img.SetGray4(-1, 0, White)
	img.SetGray4(4, 0, White)
	if got := img.Gray4At(-1, 0); got != Black {
		t.Errorf("Gray4At(-1, 0) = %v, want black", got)
	}
	if c, ok := img.At(1, 1).(Gray4); !ok || c != White {
		t.Errorf("At(1, 1) = %v, want %v", img.At(1, 1), White)
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		r    image.Rectangle
	}{
		{"byte aligned", image.Rect(2, 1, 6, 3)},
		{"unaligned", image.Rect(1, 1, 4, 3)},
		{"clipped", image.Rect(-3, -3, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(image.Rect(0, 0, 8, 4))
			img.Fill(tt.r, Gray4{Y: 9})
			inside := tt.r.Intersect(img.Rect)
			for y := 0; y < 4; y++ {
				for x := 0; x < 8; x++ {
					want := Black
					if (image.Point{X: x, Y: y}).In(inside) {
						want = Gray4{Y: 9}
					}
					if got := img.Gray4At(x, y); got != want {
						t.Errorf("Gray4At(%d, %d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestInvertedView(t *testing.T) {
	img := New(image.Rect(0, 0, 2, 1))
	img.SetGray4(0, 0, White)
	v := Inverted{Src: img}

	if v.Bounds() != img.Bounds() {
		t.Errorf("Bounds() = %v, want %v", v.Bounds(), img.Bounds())
	}
	if got := v.At(0, 0); got != Black {
		t.Errorf("At(0, 0) = %v, want black", got)
	}
	if got := v.At(1, 0); got != White {
		t.Errorf("At(1, 0) = %v, want white", got)
	}
}
