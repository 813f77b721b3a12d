package dto

type CreateCustomerInput struct {
	FirstName            string
	LastName             string
	Email                *string
	Phone                *string
	BillingAddressLine1  *string
	BillingAddressLine2  *string
	BillingCity          *string
	BillingState         *string
	BillingZip           *string
	ShippingAddressLine1 *string
	ShippingAddressLine2 *string
	ShippingCity         *string
	ShippingState        *string
	ShippingZip          *string
	Notes                *string
}

type CustomerPatch struct {
	FirstName            *string
	LastName             *string
	Email                *string
	Phone                *string
	BillingAddressLine1  *string
	BillingAddressLine2  *string
	BillingCity          *string
	BillingState         *string
	BillingZip           *string
	ShippingAddressLine1 *string
	ShippingAddressLine2 *string
	ShippingCity         *string
	ShippingState        *string
	ShippingZip          *string
	Notes                *string
}

func (p CustomerPatch) Columns() map[string]interface{} {
	c := columns{}
	c.str("first_name", p.FirstName)
	c.str("last_name", p.LastName)
	c.nullStr("email", p.Email)
	c.nullStr("phone", p.Phone)
	c.nullStr("billing_address_line1", p.BillingAddressLine1)
	c.nullStr("billing_address_line2", p.BillingAddressLine2)
	c.nullStr("billing_city", p.BillingCity)
	c.nullStr("billing_state", p.BillingState)
	c.nullStr("billing_zip", p.BillingZip)
	c.nullStr("shipping_address_line1", p.ShippingAddressLine1)
	c.nullStr("shipping_address_line2", p.ShippingAddressLine2)
	c.nullStr("shipping_city", p.ShippingCity)
	c.nullStr("shipping_state", p.ShippingState)
	c.nullStr("shipping_zip", p.ShippingZip)
	c.nullStr("notes", p.Notes)
	return c
}
