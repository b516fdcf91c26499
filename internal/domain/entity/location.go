package entity

// Location is the neighborhood tag a listing is filed under.
type Location string

const (
	LocationGangnam   Location = "강남"
	LocationSeongsu   Location = "성수"
	LocationApgujeong Location = "압구정"
	LocationItaewon   Location = "이태원"
	LocationHongdae   Location = "홍대"
)

// Locations lists every accepted tag in display order.
func Locations() []Location {
	return []Location{LocationGangnam, LocationSeongsu, LocationApgujeong, LocationItaewon, LocationHongdae}
}

// String returns the string representation of the Location.
func (l Location) String() string {
	return string(l)
}

// IsValid checks if the Location is one of the accepted tags.
func (l Location) IsValid() bool {
	switch l {
	case LocationGangnam, LocationSeongsu, LocationApgujeong, LocationItaewon, LocationHongdae:
		return true
	default:
		return false
	}
}
