package validator

// 商品APIのルール表

// GET /get-all-products は入力なし
var ListProductsRules = RuleSet{}

var GetProductRules = RuleSet{
	{Field: "id", Required: true, Type: TypeInteger},
}

// stockは任意。整数以外は422にする
var CreateProductRules = RuleSet{
	{Field: "name", Required: true, Type: TypeString},
	{Field: "price", Required: true, Type: TypeNumeric},
	{Field: "description", Required: true, Type: TypeString},
	{Field: "stock", Nullable: true, Type: TypeInteger},
}

var UpdateProductRules = RuleSet{
	{Field: "id", Required: true, Type: TypeInteger},
	{Field: "name", Nullable: true, Type: TypeString},
	{Field: "price", Nullable: true, Type: TypeNumeric},
	{Field: "description", Nullable: true, Type: TypeString},
	{Field: "stock", Nullable: true, Type: TypeInteger},
}

var DeleteProductRules = RuleSet{
	{Field: "id", Required: true, Type: TypeInteger},
}
