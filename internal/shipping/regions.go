package shipping

// The storefront only delivers within Jabodetabek, so the region directory
// is a fixed subset of the national RajaOngkir tables. IDs match the
// Komerce API so live cost lookups accept them unchanged.

var serviceProvinces = []Province{
	{ProvinceID: "6", Province: "DKI Jakarta"},
	{ProvinceID: "9", Province: "Jawa Barat"},
	{ProvinceID: "3", Province: "Banten"},
}

var serviceCitiesByProvince = map[string][]City{
	"6": {
		{CityID: "151", CityName: "Jakarta Barat"},
		{CityID: "152", CityName: "Jakarta Pusat"},
		{CityID: "153", CityName: "Jakarta Selatan"},
		{CityID: "154", CityName: "Jakarta Timur"},
		{CityID: "155", CityName: "Jakarta Utara"},
	},
	"9": {
		{CityID: "78", CityName: "Bogor"},
		{CityID: "79", CityName: "Bogor (Kota)"},
		{CityID: "115", CityName: "Depok"},
		{CityID: "54", CityName: "Bekasi"},
		{CityID: "55", CityName: "Bekasi (Kota)"},
	},
	"3": {
		{CityID: "455", CityName: "Tangerang"},
		{CityID: "456", CityName: "Tangerang (Kota)"},
		{CityID: "457", CityName: "Tangerang Selatan"},
	},
}

// defaultCities is served for region IDs outside the service area so the
// destination picker always has content.
var defaultCities = []City{
	{CityID: "1", CityName: "Kota Default 1"},
	{CityID: "2", CityName: "Kota Default 2"},
	{CityID: "3", CityName: "Kota Default 3"},
	{CityID: "4", CityName: "Kota Default 4"},
	{CityID: "5", CityName: "Kota Default 5"},
}

// Regions returns the serviceable provinces in display order.
func Regions() []Province {
	out := make([]Province, len(serviceProvinces))
	copy(out, serviceProvinces)
	return out
}

// Subregions returns the cities for a province, or the default list for
// unknown province IDs.
func Subregions(provinceID string) []City {
	cities, ok := serviceCitiesByProvince[provinceID]
	if !ok {
		cities = defaultCities
	}
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// ProvinceName resolves a serviceable province ID to its display name.
func ProvinceName(provinceID string) (string, bool) {
	for _, province := range serviceProvinces {
		if province.ProvinceID == provinceID {
			return province.Province, true
		}
	}
	return "", false
}

// CityName resolves a serviceable city ID to its display name.
func CityName(cityID string) (string, bool) {
	for _, cities := range serviceCitiesByProvince {
		for _, city := range cities {
			if city.CityID == cityID {
				return city.CityName, true
			}
		}
	}
	return "", false
}
