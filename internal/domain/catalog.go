package domain

// Service is an entry of the fixed car-wash catalog
type Service struct {
	Name        string
	Description string
	Price       int
	Icon        string
}

const (
	ServiceBasicWash   = "Basic Wash"
	ServicePremiumWash = "Premium Wash"
	ServiceFullDetail  = "Full Detail"
)

// Catalog is the ordered list of services offered to customers
var Catalog = []Service{
	{Name: ServiceBasicWash, Description: "Exterior wash with soap and rinse", Price: 15, Icon: "fas fa-car"},
	{Name: ServicePremiumWash, Description: "Exterior + Interior cleaning", Price: 25, Icon: "fas fa-star"},
	{Name: ServiceFullDetail, Description: "Complete detailing service", Price: 45, Icon: "fas fa-gem"},
}

// LookupService finds a catalog entry by its exact name
func LookupService(name string) (Service, bool) {
	for _, s := range Catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}
