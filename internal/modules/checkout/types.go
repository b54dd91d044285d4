package checkout

// CartItem is one priced, quantified cart entry as supplied by the cart
// container. Price is in dollars; it is converted to minor units exactly
// once, at the processor boundary.
type CartItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// CustomerInfo is the contact/address block collected by the checkout form.
// It never reaches the payment processor; it feeds the receipt mail only.
type CustomerInfo struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	Zipcode      string
	Phone        string
	Email        string
}

func (ci CustomerInfo) FullName() string {
	switch {
	case ci.FirstName == "":
		return ci.LastName
	case ci.LastName == "":
		return ci.FirstName
	default:
		return ci.FirstName + " " + ci.LastName
	}
}

// AddressLines renders the postal block, skipping empty parts.
func (ci CustomerInfo) AddressLines() []string {
	var lines []string
	if n := ci.FullName(); n != "" {
		lines = append(lines, n)
	}
	if ci.AddressLine1 != "" {
		lines = append(lines, ci.AddressLine1)
	}
	if ci.AddressLine2 != "" {
		lines = append(lines, ci.AddressLine2)
	}
	switch {
	case ci.City != "" && ci.Zipcode != "":
		lines = append(lines, ci.City+" "+ci.Zipcode)
	case ci.City != "":
		lines = append(lines, ci.City)
	case ci.Zipcode != "":
		lines = append(lines, ci.Zipcode)
	}
	if ci.Phone != "" {
		lines = append(lines, "Tel: "+ci.Phone)
	}
	return lines
}
