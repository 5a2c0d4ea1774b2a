package backend

// GenericErrorMessage é usado quando o backend não devolve um campo de erro.
const GenericErrorMessage = "Erro na requisição"

// APIError carrega o status HTTP e a mensagem devolvida pelo backend.
// A mensagem é exibida ao usuário exatamente como veio.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
