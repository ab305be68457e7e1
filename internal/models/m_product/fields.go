package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	IDProduct         = "id_product"
	IDCategory        = "id_category"
	IDCategoryDefault = "id_category_default"
	IDManufacturer    = "id_manufacturer"
	IDShop            = "id_shop"
	IDGroup           = "id_group"
	IDFeatureValue    = "id_feature_value"
	IDAttribute       = "id_attribute"
	Visibility        = "visibility"
	Quantity          = "quantity"
	OutOfStock        = "out_of_stock"
	Condition         = "condition"
	Weight            = "weight"
	Price             = "price"
	PriceMin          = "price_min"
	PriceMax          = "price_max"
	ReductionType     = "reduction_type"
	Reduction         = "reduction"
	ReductionPrice    = "reduction_price"
	ReductionFrom     = "reduction_from"
	ReductionTo       = "reduction_to"
	NLeft             = "nleft"
	NRight            = "nright"
	Position          = "position"
	Name              = "name"
	DateAdd           = "date_add"
	ComputedPrice     = "computed_price"
)

// Visibility values a storefront search may match.
const (
	VisibilityBoth    = "both"
	VisibilityCatalog = "catalog"
)

// ComputedPriceExpr selects the price with any currently active reduction
// applied: percentage reductions scale the base price, amount reductions
// substitute the fixed reduced price, anything else keeps the base price.
const ComputedPriceExpr = "IF(" +
	"reduction_type IS NOT NULL" +
	" AND (reduction_from IS NULL OR reduction_from <= CURRENT_TIMESTAMP())" +
	" AND (reduction_to IS NULL OR reduction_to >= CURRENT_TIMESTAMP()), " +
	"IF(reduction_type = 'percentage', price * (1 - reduction), reduction_price), " +
	"price) AS computed_price"
