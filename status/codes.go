package status

// Codes registered with IANA, as carried by the reason table below.
var (
	Continue           = Code{100}
	SwitchingProtocols = Code{101}
	Processing         = Code{102}

	OK                          = Code{200}
	Created                     = Code{201}
	Accepted                    = Code{202}
	NonAuthoritativeInformation = Code{203}
	NoContent                   = Code{204}
	ResetContent                = Code{205}
	PartialContent              = Code{206}
	MultiStatus                 = Code{207}
	AlreadyReported             = Code{208}
	IMUsed                      = Code{226}

	MultipleChoices   = Code{300}
	MovedPermanently  = Code{301}
	Found             = Code{302}
	SeeOther          = Code{303}
	NotModified       = Code{304}
	UseProxy          = Code{305}
	TemporaryRedirect = Code{307}
	PermanentRedirect = Code{308}

	BadRequest                  = Code{400}
	Unauthorized                = Code{401}
	PaymentRequired             = Code{402}
	Forbidden                   = Code{403}
	NotFound                    = Code{404}
	MethodNotAllowed            = Code{405}
	NotAcceptable               = Code{406}
	ProxyAuthenticationRequired = Code{407}
	RequestTimeout              = Code{408}
	Conflict                    = Code{409}
	Gone                        = Code{410}
	LengthRequired              = Code{411}
	PreconditionFailed          = Code{412}
	PayloadTooLarge             = Code{413}
	URITooLong                  = Code{414}
	UnsupportedMediaType        = Code{415}
	RangeNotSatisfiable         = Code{416}
	ExpectationFailed           = Code{417}
	ImATeapot                   = Code{418}
	MisdirectedRequest          = Code{421}
	UnprocessableEntity         = Code{422}
	Locked                      = Code{423}
	FailedDependency            = Code{424}
	TooEarly                    = Code{425}
	UpgradeRequired             = Code{426}
	PreconditionRequired        = Code{428}
	TooManyRequests             = Code{429}
	RequestHeaderFieldsTooLarge = Code{431}
	UnavailableForLegalReasons  = Code{451}

	InternalServerError           = Code{500}
	NotImplemented                = Code{501}
	BadGateway                    = Code{502}
	ServiceUnavailable            = Code{503}
	GatewayTimeout                = Code{504}
	HTTPVersionNotSupported       = Code{505}
	VariantAlsoNegotiates         = Code{506}
	InsufficientStorage           = Code{507}
	LoopDetected                  = Code{508}
	NotExtended                   = Code{510}
	NetworkAuthenticationRequired = Code{511}
)

// canonicalReasons is indexed by the numeric code. Empty entries have no
// registered phrase.
var canonicalReasons = [1000]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}
