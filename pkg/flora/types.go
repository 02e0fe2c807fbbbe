package flora

import (
	"github.com/florawhisper/storefront-gateway/pkg/types"
)

// Plant mirrors the upstream catalog payload. Flower-specific fields
// (color, piece) and indoor-plant fields (plantSize, careInstructions,
// isEasyToCare) are populated depending on the plant's category.
type Plant struct {
	ID               int64       `json:"plantId"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Price            types.Money `json:"price"`
	Stock            int         `json:"stock"`
	ImageURL         string      `json:"imageUrl,omitempty"`
	UpdatePrice      types.Money `json:"updatePrice"`
	PlantSize        string      `json:"plantSize,omitempty"`
	IsEasyToCare     *bool       `json:"isEasyToCare,omitempty"`
	CareInstructions string      `json:"careInstructions,omitempty"`
	Color            string      `json:"color,omitempty"`
	Piece            int         `json:"piece,omitempty"`
	Category         string      `json:"category,omitempty"`
}

// EffectivePrice is the sale price when one is set, else the base price.
// Product listings display the same amount, so cart math must match it.
func (p Plant) EffectivePrice() types.Money {
	if !p.UpdatePrice.IsZero() {
		return p.UpdatePrice
	}
	return p.Price
}

type Category struct {
	ID   int64  `json:"categoryId"`
	Name string `json:"categoryName"`
}

// FlowerMeaning is one entry in the language-of-flowers encyclopedia.
type FlowerMeaning struct {
	ID               int64             `json:"id,omitempty"`
	Name             string            `json:"name"`
	ScientificName   string            `json:"scientificName,omitempty"`
	Meaning          string            `json:"meaning,omitempty"`
	Symbolism        string            `json:"symbolism,omitempty"`
	Description      string            `json:"description,omitempty"`
	PlantingGuide    string            `json:"plantingGuide,omitempty"`
	CareInstructions string            `json:"careInstructions,omitempty"`
	Season           string            `json:"season,omitempty"`
	Occasions        []string          `json:"occasions,omitempty"`
	CulturalMeanings []string          `json:"culturalMeanings,omitempty"`
	ImageURLs        []string          `json:"imageUrls,omitempty"`
	BloomingPeriod   string            `json:"bloomingPeriod,omitempty"`
	ColorVarieties   string            `json:"colorVarieties,omitempty"`
	ColorMeanings    map[string]string `json:"colorMeanings,omitempty"`
	OriginCountry    string            `json:"originCountry,omitempty"`
	IsPerennial      *bool             `json:"isPerennial,omitempty"`
}

// ShippingStatus is the server-owned order lifecycle stage.
type ShippingStatus string

const (
	ShippingPending        ShippingStatus = "PENDING"
	ShippingProcessing     ShippingStatus = "PROCESSING"
	ShippingOutForDelivery ShippingStatus = "OUT_FOR_DELIVERY"
	ShippingDelivered      ShippingStatus = "DELIVERED"
)

// Valid reports whether s is one of the known shipping stages.
func (s ShippingStatus) Valid() bool {
	switch s {
	case ShippingPending, ShippingProcessing, ShippingOutForDelivery, ShippingDelivered:
		return true
	}
	return false
}

// CanTransitionTo mirrors the transitions the storefront may request. The
// upstream remains authoritative and can still reject a forwarded request.
func (s ShippingStatus) CanTransitionTo(next ShippingStatus) bool {
	switch next {
	case ShippingOutForDelivery:
		return s == ShippingPending || s == ShippingProcessing
	case ShippingDelivered:
		return s == ShippingOutForDelivery
	default:
		return false
	}
}

// CheckoutRequest is the upstream checkout payload. PlantQuantities is the
// serializable boundary form of the cart; encoding/json renders the int64
// keys as JSON object keys the upstream expects.
type CheckoutRequest struct {
	PlantQuantities   map[int64]int `json:"plantQuantities"`
	TotalAmount       types.Money   `json:"totalAmount"`
	CustomerEmail     string        `json:"customerEmail"`
	ShippingAddress   string        `json:"shippingAddress"`
	CustomerNotes     string        `json:"customerNotes"`
	FromAccountNumber string        `json:"fromAccountNumber"`
	PaymentUsername   string        `json:"paymentUsername"`
	Code              string        `json:"code"`
}

// OrderPlant is the plant summary embedded in an order.
type OrderPlant struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Price            types.Money `json:"price"`
	ImageURL         string      `json:"imageUrl,omitempty"`
	CategoryName     string      `json:"categoryName,omitempty"`
	PlantType        string      `json:"plantType,omitempty"`
	Color            string      `json:"color,omitempty"`
	Piece            int         `json:"piece,omitempty"`
	PlantSize        string      `json:"plantSize,omitempty"`
	EasyToCare       *bool       `json:"easyToCare,omitempty"`
	CareInstructions string      `json:"careInstructions,omitempty"`
}

// Order is the upstream checkout/order record.
type Order struct {
	ID                   int64          `json:"id"`
	OrderCode            string         `json:"orderCode"`
	OrderDate            string         `json:"orderDate"`
	TotalAmount          types.Money    `json:"totalAmount"`
	TotalItems           int            `json:"totalItems"`
	Status               string         `json:"status"`
	ShippingStatus       ShippingStatus `json:"shippingStatus"`
	ShippingAddress      string         `json:"shippingAddress"`
	CustomerNotes        string         `json:"customerNotes,omitempty"`
	ExpectedDeliveryDate string         `json:"expectedDeliveryDate,omitempty"`
	CustomerName         string         `json:"customerName,omitempty"`
	CustomerEmail        string         `json:"customerEmail,omitempty"`
	Plants               []OrderPlant   `json:"plants,omitempty"`
	PlantQuantities      map[int64]int  `json:"plantQuantities,omitempty"`
}

type LoginRequest struct {
	UserNameOrEmail string `json:"userNameOrEmail"`
	Password        string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	RoleName string `json:"roleName"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
	Img       string `json:"img,omitempty"`
}

// FormField is one text field of a multipart request (plant create/update,
// registration, profile update).
type FormField struct {
	Name  string
	Value string
}

// FormFile is an optional file part attached to a multipart request.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}
