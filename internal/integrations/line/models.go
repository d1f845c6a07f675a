package line

// pushRequest тело запроса LINE Messaging API push
type pushRequest struct {
	To       string    `json:"to"`
	Messages []message `json:"messages"`
}

// message одно текстовое сообщение
type message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// errorResponse модель ошибки LINE API
type errorResponse struct {
	Message string `json:"message"`
}
