package app

import (
	"testing"

	"github.com/iburimskiy/dot-pop/internal/config"
)

func TestBannerStartsHidden(t *testing.T) {
	b := newBanner("shape reset")
	if b.visible() {
		t.Fatal("expected a fresh banner to be hidden")
	}
}

func TestBannerSlidesInWhenShown(t *testing.T) {
	b := newBanner("shape reset")
	b.show()

	for i := 0; i < 10; i++ {
		b.update()
	}
	if !b.visible() {
		t.Fatalf("expected banner on screen, y=%v", b.y)
	}
	if b.y <= bannerHiddenY {
		t.Fatalf("expected slide toward shown position, y=%v", b.y)
	}
}

func TestBannerRetiresAfterLifetime(t *testing.T) {
	b := newBanner("shape reset")
	b.show()

	// run well past the lifetime plus the slide-out
	for i := 0; i < config.BannerTicks+200; i++ {
		b.update()
	}
	if b.visible() {
		t.Fatalf("expected banner back off screen, y=%v", b.y)
	}
}
