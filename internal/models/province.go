package models

import "time"

// Region identifies one of the three Vietnamese lottery regions.
type Region string

const (
	RegionNorth   Region = "bac"
	RegionCentral Region = "trung"
	RegionSouth   Region = "nam"
)

// Valid reports whether r is one of the three known regions.
func (r Region) Valid() bool {
	return r == RegionNorth || r == RegionCentral || r == RegionSouth
}

// Key returns the result-set key used for a whole-region entry
// (e.g. "mien-bac").
func (r Region) Key() string {
	switch r {
	case RegionNorth:
		return "mien-bac"
	case RegionCentral:
		return "mien-trung"
	default:
		return "mien-nam"
	}
}

// DisplayName returns the Vietnamese display name of the region.
func (r Region) DisplayName() string {
	switch r {
	case RegionNorth:
		return "Miền Bắc"
	case RegionCentral:
		return "Miền Trung"
	default:
		return "Miền Nam"
	}
}

// Province is one drawing authority: the northern pool or a single
// central/southern province. Static reference data, immutable at runtime.
type Province struct {
	Slug   string         `json:"slug"`
	Name   string         `json:"name"`
	Region Region         `json:"region"`
	Days   []time.Weekday `json:"days"`
	Code   string         `json:"code"`
}

// DrawsOn reports whether the province holds a drawing on the given weekday.
func (p Province) DrawsOn(day time.Weekday) bool {
	for _, d := range p.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Provinces is the full schedule table. Order matters: it is the display
// tie-break order used everywhere a province list is returned.
var Provinces = []Province{
	{Slug: "mien-bac", Name: "Miền Bắc", Region: RegionNorth, Days: []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}, Code: "xsmb"},
	{Slug: "thua-thien-hue", Name: "Thừa Thiên Huế", Region: RegionCentral, Days: []time.Weekday{time.Sunday}, Code: "xstth"},
	{Slug: "phu-yen", Name: "Phú Yên", Region: RegionCentral, Days: []time.Weekday{time.Monday}, Code: "xspy"},
	{Slug: "dak-lak", Name: "Đắk Lắk", Region: RegionCentral, Days: []time.Weekday{time.Tuesday}, Code: "xsdlk"},
	{Slug: "quang-nam", Name: "Quảng Nam", Region: RegionCentral, Days: []time.Weekday{time.Tuesday}, Code: "xsqnm"},
	{Slug: "da-nang", Name: "Đà Nẵng", Region: RegionCentral, Days: []time.Weekday{time.Wednesday}, Code: "xsdng"},
	{Slug: "khanh-hoa", Name: "Khánh Hòa", Region: RegionCentral, Days: []time.Weekday{time.Sunday, time.Wednesday}, Code: "xskh"},
	{Slug: "binh-dinh", Name: "Bình Định", Region: RegionCentral, Days: []time.Weekday{time.Thursday}, Code: "xsbdi"},
	{Slug: "quang-tri", Name: "Quảng Trị", Region: RegionCentral, Days: []time.Weekday{time.Thursday}, Code: "xsqt"},
	{Slug: "quang-binh", Name: "Quảng Bình", Region: RegionCentral, Days: []time.Weekday{time.Thursday}, Code: "xsqb"},
	{Slug: "gia-lai", Name: "Gia Lai", Region: RegionCentral, Days: []time.Weekday{time.Friday}, Code: "xsgl"},
	{Slug: "ninh-thuan", Name: "Ninh Thuận", Region: RegionCentral, Days: []time.Weekday{time.Friday}, Code: "xsnt"},
	{Slug: "quang-ngai", Name: "Quảng Ngãi", Region: RegionCentral, Days: []time.Weekday{time.Saturday}, Code: "xsqng"},
	{Slug: "dak-nong", Name: "Đắk Nông", Region: RegionCentral, Days: []time.Weekday{time.Saturday}, Code: "xsdno"},
	{Slug: "kon-tum", Name: "Kon Tum", Region: RegionCentral, Days: []time.Weekday{time.Sunday}, Code: "xskt"},
	{Slug: "tphcm", Name: "TP.HCM", Region: RegionSouth, Days: []time.Weekday{time.Monday, time.Saturday}, Code: "xshcm"},
	{Slug: "dong-thap", Name: "Đồng Tháp", Region: RegionSouth, Days: []time.Weekday{time.Monday}, Code: "xsdt"},
	{Slug: "ca-mau", Name: "Cà Mau", Region: RegionSouth, Days: []time.Weekday{time.Monday}, Code: "xscm"},
	{Slug: "ben-tre", Name: "Bến Tre", Region: RegionSouth, Days: []time.Weekday{time.Tuesday}, Code: "xsbt"},
	{Slug: "vung-tau", Name: "Vũng Tàu", Region: RegionSouth, Days: []time.Weekday{time.Tuesday}, Code: "xsvt"},
	{Slug: "bac-lieu", Name: "Bạc Liêu", Region: RegionSouth, Days: []time.Weekday{time.Tuesday}, Code: "xsbl"},
	{Slug: "dong-nai", Name: "Đồng Nai", Region: RegionSouth, Days: []time.Weekday{time.Wednesday}, Code: "xsdn"},
	{Slug: "can-tho", Name: "Cần Thơ", Region: RegionSouth, Days: []time.Weekday{time.Wednesday}, Code: "xsct"},
	{Slug: "soc-trang", Name: "Sóc Trăng", Region: RegionSouth, Days: []time.Weekday{time.Wednesday}, Code: "xsst"},
	{Slug: "tay-ninh", Name: "Tây Ninh", Region: RegionSouth, Days: []time.Weekday{time.Thursday}, Code: "xstn"},
	{Slug: "an-giang", Name: "An Giang", Region: RegionSouth, Days: []time.Weekday{time.Thursday}, Code: "xsag"},
	{Slug: "binh-thuan", Name: "Bình Thuận", Region: RegionSouth, Days: []time.Weekday{time.Thursday}, Code: "xsbth"},
	{Slug: "vinh-long", Name: "Vĩnh Long", Region: RegionSouth, Days: []time.Weekday{time.Friday}, Code: "xsvl"},
	{Slug: "binh-duong", Name: "Bình Dương", Region: RegionSouth, Days: []time.Weekday{time.Friday}, Code: "xsbd"},
	{Slug: "tra-vinh", Name: "Trà Vinh", Region: RegionSouth, Days: []time.Weekday{time.Friday}, Code: "xstv"},
	{Slug: "long-an", Name: "Long An", Region: RegionSouth, Days: []time.Weekday{time.Saturday}, Code: "xsla"},
	{Slug: "binh-phuoc", Name: "Bình Phước", Region: RegionSouth, Days: []time.Weekday{time.Saturday}, Code: "xsbp"},
	{Slug: "hau-giang", Name: "Hậu Giang", Region: RegionSouth, Days: []time.Weekday{time.Saturday}, Code: "xshg"},
	{Slug: "tien-giang", Name: "Tiền Giang", Region: RegionSouth, Days: []time.Weekday{time.Sunday}, Code: "xstg"},
	{Slug: "kien-giang", Name: "Kiên Giang", Region: RegionSouth, Days: []time.Weekday{time.Sunday}, Code: "xskg"},
	{Slug: "da-lat", Name: "Đà Lạt", Region: RegionSouth, Days: []time.Weekday{time.Sunday}, Code: "xsdl"},
}

// ProvinceBySlug looks a province up by its slug.
func ProvinceBySlug(slug string) (Province, bool) {
	for _, p := range Provinces {
		if p.Slug == slug {
			return p, true
		}
	}
	return Province{}, false
}
