package models

import "testing"

func TestImageSizeTotalOverPlatforms(t *testing.T) {
	for _, platform := range Platforms {
		size := platform.ImageSize()
		if size != ImageSizeSquare && size != ImageSizeTall {
			t.Errorf("%s: unexpected size %q", platform, size)
		}
		if platform == PlatformInstagram && size != ImageSizeSquare {
			t.Errorf("instagram must map to square, got %q", size)
		}
		if platform != PlatformInstagram && size != ImageSizeTall {
			t.Errorf("%s must map to tall, got %q", platform, size)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	if !PlatformInstagram.Valid() || Platform("myspace").Valid() {
		t.Error("platform validity broken")
	}
	if !ToneHumorous.Valid() || Tone("sarcastic").Valid() {
		t.Error("tone validity broken")
	}
	if !IndustryFood.Valid() || Industry("astrology").Valid() {
		t.Error("industry validity broken")
	}
	if !LanguagePolish.Valid() || Language("de").Valid() {
		t.Error("language validity broken")
	}
	if len(Industries) != 10 {
		t.Errorf("expected ten industries, got %d", len(Industries))
	}
}
