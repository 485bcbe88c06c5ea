package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProvince_FullNames(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"서울특별시 강남구", "서울"},
		{"부산광역시 해운대구", "부산"},
		{"대구광역시 수성구", "대구"},
		{"인천광역시 연수구", "인천"},
		{"광주광역시 서구", "광주"},
		{"대전광역시 유성구", "대전"},
		{"울산광역시 남구", "울산"},
		{"세종특별자치시 한솔동", "세종"},
		{"경기도 수원시 영통구", "경기"},
		{"강원특별자치도 춘천시", "강원"},
		{"강원도 원주시", "강원"},
		{"충청북도 청주시", "충북"},
		{"충청남도 천안시", "충남"},
		{"전북특별자치도 전주시", "전북"},
		{"전라북도 익산시", "전북"},
		{"전라남도 여수시", "전남"},
		{"경상북도 포항시", "경북"},
		{"경상남도 창원시", "경남"},
		{"제주특별자치도 제주시", "제주"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractProvince(tt.addr))
		})
	}
}

func TestExtractProvince_ShortForms(t *testing.T) {
	assert.Equal(t, "경기", ExtractProvince("경기 수원시 영통구"))
	assert.Equal(t, "전남", ExtractProvince("전남 여수시"))
	assert.Equal(t, "서울", ExtractProvince("서울 강남구"))
}

func TestExtractProvince_AmbiguousJeolla(t *testing.T) {
	// Bare "전라도" is disambiguated by county names found in the string.
	assert.Equal(t, "전남", ExtractProvince("전라도 완도군 완도읍"))
	assert.Equal(t, "전남", ExtractProvince("전라도 해남군"))
	assert.Equal(t, "전북", ExtractProvince("전라도 전주시 완산구"))
	assert.Equal(t, "전북", ExtractProvince("전라도 군산시"))

	// No recognizable county: defaults to the southern province. This is a
	// documented approximation preserved from the source data, not ground truth.
	assert.Equal(t, "전남", ExtractProvince("전라도 어딘가 123"))
}

func TestExtractProvince_EmbeddedShortForm(t *testing.T) {
	assert.Equal(t, "충북", ExtractProvince("충북경제협회 3층"))
	assert.Equal(t, "경남", ExtractProvince("경남은행 본점"))
}

func TestExtractProvince_NoMatch(t *testing.T) {
	assert.Empty(t, ExtractProvince(""))
	assert.Empty(t, ExtractProvince("[주소 미제공]"))
	assert.Empty(t, ExtractProvince("[직접방문]"))
	assert.Empty(t, ExtractProvince("N/A"))
	assert.Empty(t, ExtractProvince("somewhere abroad"))
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"경기도 수원시 영통구", "수원시"},
		{"충청북도 청주시 상당구", "청주시"},
		{"강원특별자치도 춘천시", "춘천시"},
		{"수원시 장안구", "수원시"},
		// Metropolitan cities have no city tier.
		{"서울특별시 강남구", ""},
		{"부산광역시 해운대구", ""},
		{"세종특별자치시 한솔동", ""},
		{"서울 강남구", ""},
		// Bare metro-city short form collides with the metropolitan name.
		{"광주시 오포읍", ""},
		// Placeholders and empties.
		{"[주소 미제공]", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCity(tt.addr))
		})
	}
}
