package address

import (
	"regexp"
	"strings"
)

// provinceEntry maps a full province/metropolitan-city name to its short form.
// Ordered so prefix matching tries current official names before legacy ones.
type provinceEntry struct {
	full  string
	short string
}

var provinceTable = []provinceEntry{
	{"서울특별시", "서울"},
	{"부산광역시", "부산"},
	{"대구광역시", "대구"},
	{"인천광역시", "인천"},
	{"광주광역시", "광주"},
	{"대전광역시", "대전"},
	{"울산광역시", "울산"},
	{"세종특별자치시", "세종"},
	{"경기도", "경기"},
	{"강원특별자치도", "강원"},
	{"강원도", "강원"},
	{"충청북도", "충북"},
	{"충청남도", "충남"},
	{"전북특별자치도", "전북"},
	{"전라북도", "전북"},
	{"전라남도", "전남"},
	{"경상북도", "경북"},
	{"경상남도", "경남"},
	{"제주특별자치도", "제주"},
	{"제주도", "제주"},
}

var shortForms = []string{
	"서울", "부산", "대구", "인천", "광주", "대전", "울산", "세종",
	"경기", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
}

var shortFormSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(shortForms))
	for _, s := range shortForms {
		set[s] = struct{}{}
	}

	return set
}()

// Cities and counties used to disambiguate a bare "전라도" prefix.
var (
	jeonbukCounties = []string{
		"전주", "익산", "군산", "정읍", "남원", "김제", "완주",
		"진안", "무주", "장수", "임실", "순창", "고창", "부안",
	}
	jeonnamCounties = []string{
		"목포", "여수", "순천", "나주", "광양", "담양", "곡성", "구례",
		"고흥", "보성", "화순", "장흥", "강진", "해남", "영암", "무안",
		"함평", "영광", "장성", "완도", "진도", "신안",
	}
)

// Metropolitan/special cities have no city tier below them.
var metroCityNames = []string{
	"서울특별시", "부산광역시", "대구광역시", "인천광역시",
	"광주광역시", "대전광역시", "울산광역시", "세종특별자치시",
}

var metroShortSet = map[string]struct{}{
	"서울": {}, "부산": {}, "대구": {}, "인천": {},
	"광주": {}, "대전": {}, "울산": {}, "세종": {},
}

// metroBareCitySet rejects a bare leading "<name>시" that is really a
// metropolitan city written short, e.g. "광주시" in an address without a
// province is ambiguous with 광주광역시.
var metroBareCitySet = map[string]struct{}{
	"서울시": {}, "부산시": {}, "대구시": {}, "인천시": {},
	"광주시": {}, "대전시": {}, "울산시": {}, "세종시": {},
}

var (
	genericProvinceRe = regexp.MustCompile(`^([가-힣]{2,})(도|시)`)
	provinceCityRe    = regexp.MustCompile(`도\s([가-힣]+)시`)
	leadingCityRe     = regexp.MustCompile(`^([가-힣]+)시`)
)

// ExtractProvince parses a free-text Korean address into the canonical
// province short name. Rules apply in order; the first match wins.
// Returns "" when nothing matches or the address is a placeholder.
func ExtractProvince(addr string) string {
	normalized := Normalize(addr)
	if normalized == "" || strings.HasPrefix(normalized, "[") || normalized == PlaceholderNA {
		return ""
	}

	// Full province/metropolitan-city names.
	for _, entry := range provinceTable {
		if strings.HasPrefix(normalized, entry.full) {
			return entry.short
		}
	}

	// Already-short forms at a word boundary.
	for _, short := range shortForms {
		if normalized == short || strings.HasPrefix(normalized, short+" ") {
			return short
		}
	}

	// Ambiguous "전라도" with no direction: disambiguate by scanning for a
	// known county/city anywhere in the string. Unmatched addresses default
	// to 전남; most such addresses in the source data are southern. This is
	// a documented approximation, not ground truth.
	if strings.HasPrefix(normalized, "전라도") {
		for _, county := range jeonbukCounties {
			if strings.Contains(normalized, county) {
				return "전북"
			}
		}
		for _, county := range jeonnamCounties {
			if strings.Contains(normalized, county) {
				return "전남"
			}
		}

		return "전남"
	}

	// Generic "<hangul>도" / "<hangul>시" prefix.
	if m := genericProvinceRe.FindStringSubmatch(normalized); m != nil {
		token := m[1] + m[2]
		for _, entry := range provinceTable {
			if entry.full == token {
				return entry.short
			}
		}
		if m[2] == "도" {
			base := []rune(m[1])
			if string(base) == "전라" {
				return ""
			}
			// Derive a short form from a directional suffix, e.g. 전라북도 -> 전북.
			last := base[len(base)-1]
			if last == '북' || last == '남' {
				derived := string(base[0]) + string(last)
				if _, ok := shortFormSet[derived]; ok {
					return derived
				}
			}
		}
	}

	// Short form embedded at the start of other text, e.g. "충북경제협회".
	for _, short := range shortForms {
		if strings.HasPrefix(normalized, short) {
			return short
		}
	}

	return ""
}

// ExtractCity parses the city tier ("~시") out of a free-text address.
// Metropolitan/special-city addresses have no city tier and return "".
func ExtractCity(addr string) string {
	normalized := Normalize(addr)
	if normalized == "" || strings.HasPrefix(normalized, "[") || normalized == PlaceholderNA {
		return ""
	}

	for _, metro := range metroCityNames {
		if strings.HasPrefix(normalized, metro) {
			return ""
		}
	}
	for short := range metroShortSet {
		if normalized == short || strings.HasPrefix(normalized, short+" ") {
			return ""
		}
	}

	// "<province>도 <name>시" pattern.
	if m := provinceCityRe.FindStringSubmatch(normalized); m != nil {
		return m[1] + "시"
	}

	// Bare leading "<name>시", rejected when the name is really a
	// metropolitan city written short.
	if m := leadingCityRe.FindStringSubmatch(normalized); m != nil {
		city := m[1] + "시"
		if _, ok := metroBareCitySet[city]; ok {
			return ""
		}

		return city
	}

	return ""
}
