package worldpay_hpp

import (
	"github.com/beevik/etree"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// The street portion of a wire address is a union of optional variant
// elements. Encoding emits only the variants set on the domain address, in
// the union's declared precedence order; decoding applies each recognized
// variant and skips anything it does not know, so future wire fields never
// break parsing.

func encodeAddress(parent *etree.Element, addr *models.Address) {
	el := parent.CreateElement("address")

	addTextIfSet(el, "firstName", addr.FirstName)
	addTextIfSet(el, "lastName", addr.LastName)

	addTextIfSet(el, "street", addr.Street)
	addTextIfSet(el, "houseName", addr.HouseName)
	addTextIfSet(el, "houseNumber", addr.HouseNumber)
	addTextIfSet(el, "houseNumberExtension", addr.HouseNumberExtension)
	addTextIfSet(el, "address1", addr.Address1)
	addTextIfSet(el, "address2", addr.Address2)
	addTextIfSet(el, "address3", addr.Address3)

	addTextIfSet(el, "postalCode", addr.PostalCode)
	addTextIfSet(el, "city", addr.City)
	addTextIfSet(el, "state", addr.State)
	addTextIfSet(el, "countryCode", addr.CountryCode)
	addTextIfSet(el, "telephoneNumber", addr.TelephoneNumber)
}

func decodeAddress(el *etree.Element) *models.Address {
	if el == nil {
		return nil
	}

	addr := &models.Address{}
	for _, child := range el.ChildElements() {
		value := child.Text()
		switch child.Tag {
		case "firstName":
			addr.FirstName = value
		case "lastName":
			addr.LastName = value
		case "street":
			addr.Street = value
		case "houseName":
			addr.HouseName = value
		case "houseNumber":
			addr.HouseNumber = value
		case "houseNumberExtension":
			addr.HouseNumberExtension = value
		case "address1":
			addr.Address1 = value
		case "address2":
			addr.Address2 = value
		case "address3":
			addr.Address3 = value
		case "postalCode":
			addr.PostalCode = value
		case "city":
			addr.City = value
		case "state":
			addr.State = value
		case "countryCode":
			addr.CountryCode = value
		case "telephoneNumber":
			addr.TelephoneNumber = value
		}
	}
	return addr
}

func addTextIfSet(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}
