package msgs

// ServiceType describes a service schema: its name, MD5 sum and the request
// and response message types. Generated bindings expose one package-level
// ServiceType value per service.
type ServiceType interface {
	MD5Sum() string
	Name() string
	RequestType() MessageType
	ResponseType() MessageType
	NewService() Service
}

// Service is one request/response pair.
type Service interface {
	ReqMessage() Message
	ResMessage() Message
}
