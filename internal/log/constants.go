package log

const (
	KeyAppName            = "app"
	KeyCacheKey           = "cacheKey"
	KeyCart               = "cart"
	KeyCartID             = "cartId"
	KeyConfig             = "config"
	KeyLineItem           = "lineItem"
	KeyLineItemID         = "lineItemId"
	KeyNotice             = "notice"
	KeyOrder              = "order"
	KeyOrderID            = "orderId"
	KeyPathValues         = "pathValues"
	KeyProcess            = "process"
	KeyProduct            = "product"
	KeyProductID          = "productId"
	KeyProducts           = "products"
	KeyQuantity           = "quantity"
	KeyRedirectTo         = "redirectTo"
	KeyRequest            = "request"
	KeyRequestBody        = "requestBody"
	KeyRequestHeader      = "requestHeader"
	KeyRequestHost        = "host"
	KeyRequestID          = "requestId"
	KeyRequestIp          = "requesterIP"
	KeyRequestMethod      = "requestMethod"
	KeyRequestProcessedAt = "requestProcessedAt"
	KeyRequestURI         = "requestURI"
	KeyRequestURL         = "requestURL"
	KeySessionID          = "sessionId"
	KeyTag                = "tag"
	KeyToken              = "token"
	KeyTotalPrice         = "totalPrice"
	KeyUserID             = "userId"
	KeyUsername           = "username"
)
