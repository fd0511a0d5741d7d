package koppen

// ClassInfo describes a Köppen-Geiger climate class.
type ClassInfo struct {
	Code        string `json:"code"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

var groups = map[byte]string{
	'A': "Tropical",
	'B': "Arid",
	'C': "Temperate",
	'D': "Continental",
	'E': "Polar",
}

var classDescriptions = map[string]string{
	"Af":  "Tropical rainforest",
	"Am":  "Tropical monsoon",
	"Aw":  "Tropical savanna, dry winter",
	"As":  "Tropical savanna, dry summer",
	"BWh": "Hot desert",
	"BWk": "Cold desert",
	"BSh": "Hot semi-arid",
	"BSk": "Cold semi-arid",
	"Csa": "Hot-summer Mediterranean",
	"Csb": "Warm-summer Mediterranean",
	"Csc": "Cold-summer Mediterranean",
	"Cwa": "Monsoon-influenced humid subtropical",
	"Cwb": "Subtropical highland, dry winter",
	"Cwc": "Cold subtropical highland, dry winter",
	"Cfa": "Humid subtropical",
	"Cfb": "Temperate oceanic",
	"Cfc": "Subpolar oceanic",
	"Dsa": "Hot-summer continental, dry summer",
	"Dsb": "Warm-summer continental, dry summer",
	"Dsc": "Subarctic, dry summer",
	"Dsd": "Extremely cold subarctic, dry summer",
	"Dwa": "Monsoon-influenced hot-summer humid continental",
	"Dwb": "Monsoon-influenced warm-summer humid continental",
	"Dwc": "Monsoon-influenced subarctic",
	"Dwd": "Monsoon-influenced extremely cold subarctic",
	"Dfa": "Hot-summer humid continental",
	"Dfb": "Warm-summer humid continental",
	"Dfc": "Subarctic",
	"Dfd": "Extremely cold subarctic",
	"ET":  "Tundra",
	"EF":  "Ice cap",
}

// Describe returns the catalogue entry for a class code such as "Cfb".
func Describe(code string) (ClassInfo, bool) {
	desc, ok := classDescriptions[code]
	if !ok {
		return ClassInfo{}, false
	}
	return ClassInfo{
		Code:        code,
		Group:       groups[code[0]],
		Description: desc,
	}, true
}
