package parser

var KEYWORDS = map[string]TokenType{
	"struct":             STRUCT,
	"enum":               ENUM,
	"scope":              SCOPE,
	"match":              MATCH,
	"principle":          PRINCIPLE,
	"forall":             FORALL,
	"exists":             EXISTS,
	"legal_test":         LEGAL_TEST,
	"requires":           REQUIRES,
	"effective":          EFFECTIVE,
	"sunset":             SUNSET,
	"retroactive":        RETROACTIVE,
	"extends":            EXTENDS,
	"mutually_exclusive": MUTUALLY_EXCLUSIVE,
	"where":              WHERE,
	"type":               TYPE,
	"fn":                 FN,
	"in":                 IN,
	"true":               TRUE,
	"false":              FALSE,
}
