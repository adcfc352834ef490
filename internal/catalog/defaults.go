package catalog

import (
	"github.com/mmynk/carwash/internal/models"
)

var defaultCatalog = NewStatic(defaultData())

// Default returns the built-in catalog.
func Default() *Static {
	return defaultCatalog
}

// DefaultProductTypes returns the four product types of the built-in catalog.
func DefaultProductTypes() []models.ProductType {
	return defaultCatalog.ProductTypes()
}

func defaultData() Data {
	return Data{
		ProductTypes: []models.ProductType{
			{Key: models.ProductTypeCar, Name: "Bil", Description: "Rengøring af personbiler og varevogne"},
			{Key: models.ProductTypeBabyTrolley, Name: "Barnevogn", Description: "Rens af barnevogne og klapvogne"},
			{Key: models.ProductTypeMotorcycle, Name: "Motorcykel", Description: "Vask og pleje af motorcykler"},
			{Key: models.ProductTypeYacht, Name: "Lystbåd", Description: "Rengøring af lystbåde i havn"},
		},
		MainProducts: []models.MainProduct{
			{ID: "car-full", Name: "Hele bilen", Description: "Udvendig vask og indvendig rengøring", Price: 999, Duration: 150, ProductType: models.ProductTypeCar, CategoryID: "vehicle"},
			{ID: "car-interior", Name: "Indvendig rengøring", Description: "Støvsugning, aftørring og ruder indvendigt", Price: 699, Duration: 90, ProductType: models.ProductTypeCar, CategoryID: "vehicle"},
			{ID: "car-exterior", Name: "Udvendig vask", Description: "Håndvask, fælge og tørring", Price: 499, Duration: 60, ProductType: models.ProductTypeCar, CategoryID: "vehicle"},

			{ID: "trolley-full", Name: "Komplet rens", Description: "Rens af stof, stel og hjul", Price: 449, Duration: 60, ProductType: models.ProductTypeBabyTrolley, CategoryID: "trolley"},
			{ID: "trolley-fabric", Name: "Stofrens", Description: "Dybderens af kalech og lift", Price: 299, Duration: 45, ProductType: models.ProductTypeBabyTrolley, CategoryID: "trolley"},

			{ID: "mc-full", Name: "Komplet vask", Description: "Vask, affedtning og tørring", Price: 599, Duration: 75, ProductType: models.ProductTypeMotorcycle, CategoryID: "vehicle"},
			{ID: "mc-polish", Name: "Vask og polering", Description: "Komplet vask med polering af lak og krom", Price: 899, Duration: 120, ProductType: models.ProductTypeMotorcycle, CategoryID: "vehicle"},

			{ID: "yacht-exterior", Name: "Udvendig vask", Description: "Vask af skrog og dæk", Price: 2499, Duration: 240, ProductType: models.ProductTypeYacht, CategoryID: "marine"},
			{ID: "yacht-full", Name: "Komplet rengøring", Description: "Udvendig vask og rengøring af kahyt", Price: 4999, Duration: 480, ProductType: models.ProductTypeYacht, CategoryID: "marine"},
		},
		Addons: []models.Addon{
			{ID: "pet-hair", Name: "Fjernelse af dyrehår", Kind: models.AddonKindBoolean, Price: models.Amount(199), ProductType: models.ProductTypeCar},
			{ID: "leather-care", Name: "Læderpleje", Kind: models.AddonKindBoolean, Price: models.Amount(179), ProductType: models.ProductTypeCar},
			{ID: "seat-cleaning", Name: "Sæderens", Description: "Dybderens pr. sæde", Kind: models.AddonKindQuantity, UnitPrice: models.Amount(99), Min: 1, Max: 7, ProductType: models.ProductTypeCar},
			{ID: "ceramic-coating", Name: "Keramisk coating", Kind: models.AddonKindBoolean, Price: models.Amount(1499), ProductType: models.ProductTypeCar},

			{ID: "trolley-impregnation", Name: "Imprægnering", Kind: models.AddonKindBoolean, Price: models.Amount(129), ProductType: models.ProductTypeBabyTrolley},
			{ID: "trolley-harness", Name: "Rens af seler", Kind: models.AddonKindBoolean, Price: models.Amount(49), ProductType: models.ProductTypeBabyTrolley},

			{ID: "mc-chain", Name: "Kædepleje", Kind: models.AddonKindBoolean, Price: models.Amount(149), ProductType: models.ProductTypeMotorcycle},
			{ID: "mc-helmet", Name: "Hjelmrens", Description: "Rens af hjelm inkl. foring", Kind: models.AddonKindQuantity, UnitPrice: models.Amount(79), Min: 1, Max: 2, ProductType: models.ProductTypeMotorcycle},

			{ID: "yacht-hull-polish", Name: "Skrogpolering", Description: "Pris pr. fod bådlængde", Kind: models.AddonKindQuantity, UnitPrice: models.Amount(149), Min: 1, Max: 60, ProductType: models.ProductTypeYacht},
			{ID: "yacht-teak", Name: "Teakpleje", Kind: models.AddonKindBoolean, Price: models.Amount(1299), ProductType: models.ProductTypeYacht},
		},
	}
}
