package header

// Standard header names.
var (
	Accept                          = NameFromStatic("accept")
	AcceptCharset                   = NameFromStatic("accept-charset")
	AcceptEncoding                  = NameFromStatic("accept-encoding")
	AcceptLanguage                  = NameFromStatic("accept-language")
	AcceptRanges                    = NameFromStatic("accept-ranges")
	AccessControlAllowCredentials   = NameFromStatic("access-control-allow-credentials")
	AccessControlAllowHeaders       = NameFromStatic("access-control-allow-headers")
	AccessControlAllowMethods       = NameFromStatic("access-control-allow-methods")
	AccessControlAllowOrigin        = NameFromStatic("access-control-allow-origin")
	AccessControlExposeHeaders      = NameFromStatic("access-control-expose-headers")
	AccessControlMaxAge             = NameFromStatic("access-control-max-age")
	AccessControlRequestHeaders     = NameFromStatic("access-control-request-headers")
	AccessControlRequestMethod      = NameFromStatic("access-control-request-method")
	Age                             = NameFromStatic("age")
	Allow                           = NameFromStatic("allow")
	AltSvc                          = NameFromStatic("alt-svc")
	Authorization                   = NameFromStatic("authorization")
	CacheControl                    = NameFromStatic("cache-control")
	CacheStatus                     = NameFromStatic("cache-status")
	CDNCacheControl                 = NameFromStatic("cdn-cache-control")
	Connection                      = NameFromStatic("connection")
	ContentDisposition              = NameFromStatic("content-disposition")
	ContentEncoding                 = NameFromStatic("content-encoding")
	ContentLanguage                 = NameFromStatic("content-language")
	ContentLength                   = NameFromStatic("content-length")
	ContentLocation                 = NameFromStatic("content-location")
	ContentRange                    = NameFromStatic("content-range")
	ContentSecurityPolicy           = NameFromStatic("content-security-policy")
	ContentSecurityPolicyReportOnly = NameFromStatic("content-security-policy-report-only")
	ContentType                     = NameFromStatic("content-type")
	Cookie                          = NameFromStatic("cookie")
	DNT                             = NameFromStatic("dnt")
	Date                            = NameFromStatic("date")
	ETag                            = NameFromStatic("etag")
	Expect                          = NameFromStatic("expect")
	Expires                         = NameFromStatic("expires")
	Forwarded                       = NameFromStatic("forwarded")
	From                            = NameFromStatic("from")
	Host                            = NameFromStatic("host")
	IfMatch                         = NameFromStatic("if-match")
	IfModifiedSince                 = NameFromStatic("if-modified-since")
	IfNoneMatch                     = NameFromStatic("if-none-match")
	IfRange                         = NameFromStatic("if-range")
	IfUnmodifiedSince               = NameFromStatic("if-unmodified-since")
	LastModified                    = NameFromStatic("last-modified")
	Link                            = NameFromStatic("link")
	Location                        = NameFromStatic("location")
	MaxForwards                     = NameFromStatic("max-forwards")
	Origin                          = NameFromStatic("origin")
	Pragma                          = NameFromStatic("pragma")
	ProxyAuthenticate               = NameFromStatic("proxy-authenticate")
	ProxyAuthorization              = NameFromStatic("proxy-authorization")
	PublicKeyPins                   = NameFromStatic("public-key-pins")
	PublicKeyPinsReportOnly         = NameFromStatic("public-key-pins-report-only")
	Range                           = NameFromStatic("range")
	Referer                         = NameFromStatic("referer")
	ReferrerPolicy                  = NameFromStatic("referrer-policy")
	Refresh                         = NameFromStatic("refresh")
	RetryAfter                      = NameFromStatic("retry-after")
	SecWebsocketAccept              = NameFromStatic("sec-websocket-accept")
	SecWebsocketExtensions          = NameFromStatic("sec-websocket-extensions")
	SecWebsocketKey                 = NameFromStatic("sec-websocket-key")
	SecWebsocketProtocol            = NameFromStatic("sec-websocket-protocol")
	SecWebsocketVersion             = NameFromStatic("sec-websocket-version")
	Server                          = NameFromStatic("server")
	SetCookie                       = NameFromStatic("set-cookie")
	StrictTransportSecurity         = NameFromStatic("strict-transport-security")
	TE                              = NameFromStatic("te")
	Trailer                         = NameFromStatic("trailer")
	TransferEncoding                = NameFromStatic("transfer-encoding")
	UserAgent                       = NameFromStatic("user-agent")
	Upgrade                         = NameFromStatic("upgrade")
	UpgradeInsecureRequests         = NameFromStatic("upgrade-insecure-requests")
	Vary                            = NameFromStatic("vary")
	Via                             = NameFromStatic("via")
	Warning                         = NameFromStatic("warning")
	WWWAuthenticate                 = NameFromStatic("www-authenticate")
	XContentTypeOptions             = NameFromStatic("x-content-type-options")
	XDNSPrefetchControl             = NameFromStatic("x-dns-prefetch-control")
	XFrameOptions                   = NameFromStatic("x-frame-options")
	XXSSProtection                  = NameFromStatic("x-xss-protection")
)
