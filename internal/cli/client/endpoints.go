package client

const (
	// Catalog endpoints
	endpointProducts     = "/products"    // GET, POST
	endpointProductsByID = "/products/%d" // GET, PUT, DELETE

	// Chat endpoints
	endpointChat        = "/chat"                     // POST
	endpointChatHistory = "/chat/history/%s"          // GET, DELETE
	endpointChatLimited = "/chat/history/%s?limit=%d" // GET
)
