package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   \t  ", want: ""},
		{name: "trims and collapses", in: "  경기도   수원시  영통구 ", want: "경기도 수원시 영통구"},
		{name: "plain address unchanged", in: "서울특별시 강남구", want: "서울특별시 강남구"},
		{name: "placeholder passes through", in: "[주소 미제공]", want: "[주소 미제공]"},
		{name: "na passes through", in: "N/A", want: "N/A"},
		{name: "walk-in exact", in: "직접방문", want: "[직접방문]"},
		{name: "walk-in spaced", in: "직접 방문", want: "[직접방문]"},
		{name: "walk-in loose", in: "매장 직접 방문 예정", want: "[직접방문]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"경기도   수원시",
		"[주소 미제공]",
		"[직접방문]",
		"직접 방문",
		"N/A",
		"서울특별시 강남구 테헤란로 123",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", in)
	}
}

func TestIsGeocodable(t *testing.T) {
	notGeocodable := []string{
		"",
		"   ",
		"[주소 미제공]",
		"[직접방문]",
		"[온라인 전용]",
		"N/A",
		"직접방문",
		"직접 방문",
	}
	for _, in := range notGeocodable {
		assert.False(t, IsGeocodable(in), "expected %q to be non-geocodable", in)
	}

	geocodable := []string{
		"서울특별시 강남구",
		"경기도 수원시 영통구",
		"  부산광역시   해운대구 ",
	}
	for _, in := range geocodable {
		assert.True(t, IsGeocodable(in), "expected %q to be geocodable", in)
	}
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(PlaceholderNotProvided))
	assert.True(t, IsPlaceholder(PlaceholderWalkIn))
	assert.True(t, IsPlaceholder(PlaceholderOnlineOnly))
	assert.True(t, IsPlaceholder(PlaceholderNA))
	assert.False(t, IsPlaceholder("서울특별시 강남구"))
	assert.False(t, IsPlaceholder(""))
}
