package msgs

// DynamicServiceType is a service schema resolved at runtime from the
// schema tree. It implements ServiceType.
type DynamicServiceType struct {
	name    string
	md5Sum  string
	text    string
	reqType *DynamicMessageType
	resType *DynamicMessageType
}

// DynamicService pairs a request and response instance of a dynamic
// service type.
type DynamicService struct {
	dynamicType *DynamicServiceType
	Request     Message
	Response    Message
}

// NewDynamicServiceType resolves typeName (e.g. "grasp_msgs/gqcnnpj") from
// the schema tree.
func NewDynamicServiceType(typeName string) (*DynamicServiceType, error) {
	spec, err := schemaContext().LoadSrv(typeName)
	if err != nil {
		return nil, err
	}
	return &DynamicServiceType{
		name:    spec.FullName,
		md5Sum:  spec.MD5Sum,
		text:    spec.Text,
		reqType: &DynamicMessageType{spec: spec.Request},
		resType: &DynamicMessageType{spec: spec.Response},
	}, nil
}

func (t *DynamicServiceType) Name() string {
	return t.name
}

func (t *DynamicServiceType) MD5Sum() string {
	return t.md5Sum
}

func (t *DynamicServiceType) Text() string {
	return t.text
}

func (t *DynamicServiceType) RequestType() MessageType {
	return t.reqType
}

func (t *DynamicServiceType) ResponseType() MessageType {
	return t.resType
}

// NewService creates zero-valued request and response messages.
func (t *DynamicServiceType) NewService() Service {
	return &DynamicService{
		dynamicType: t,
		Request:     t.reqType.NewMessage(),
		Response:    t.resType.NewMessage(),
	}
}

func (s *DynamicService) ReqMessage() Message {
	return s.Request
}

func (s *DynamicService) ResMessage() Message {
	return s.Response
}
