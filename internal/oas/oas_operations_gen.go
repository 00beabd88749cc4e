// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	CreateProductOperation          OperationName = "CreateProduct"
	CreateSmeOperation              OperationName = "CreateSme"
	GetCategoryOperation            OperationName = "GetCategory"
	GetProductOperation             OperationName = "GetProduct"
	GetSmeOperation                 OperationName = "GetSme"
	ListCategoriesOperation         OperationName = "ListCategories"
	ListMapMarkersOperation         OperationName = "ListMapMarkers"
	ListProductsOperation           OperationName = "ListProducts"
	ListRelatedProductsOperation    OperationName = "ListRelatedProducts"
	ListSmesOperation               OperationName = "ListSmes"
	ListStorefrontProductsOperation OperationName = "ListStorefrontProducts"
	ListStorefrontSmesOperation     OperationName = "ListStorefrontSmes"
	LoginOperation                  OperationName = "Login"
)
