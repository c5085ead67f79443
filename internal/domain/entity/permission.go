package entity

// Nomes das capacidades, iguais aos usados no payload JSON da sessão.
const (
	CapCreateProjects  = "createProjects"
	CapEditProjects    = "editProjects"
	CapDeleteProjects  = "deleteProjects"
	CapDownloadReports = "downloadReports"
	CapCreateUsers     = "createUsers"
	CapEditUsers       = "editUsers"
	CapDeleteUsers     = "deleteUsers"
	CapCreateTests     = "createTests"
	CapEditTests       = "editTests"
	CapDeleteTests     = "deleteTests"
	CapCreateStock     = "createStock"
	CapEditStock       = "editStock"
	CapDeleteStock     = "deleteStock"
)

// Permission é o conjunto completo de capacidades de um usuário.
// Cada flag concede uma ação específica, independente do papel.
// O zero value nega tudo: ausência de chave nunca é um crash, é false.
type Permission struct {
	CreateProjects  bool `json:"createProjects"`
	EditProjects    bool `json:"editProjects"`
	DeleteProjects  bool `json:"deleteProjects"`
	DownloadReports bool `json:"downloadReports"`
	CreateUsers     bool `json:"createUsers"`
	EditUsers       bool `json:"editUsers"`
	DeleteUsers     bool `json:"deleteUsers"`
	CreateTests     bool `json:"createTests"`
	EditTests       bool `json:"editTests"`
	DeleteTests     bool `json:"deleteTests"`
	CreateStock     bool `json:"createStock"`
	EditStock       bool `json:"editStock"`
	DeleteStock     bool `json:"deleteStock"`
}

// Has devolve o valor da capacidade nomeada. Nomes desconhecidos negam.
func (p Permission) Has(capability string) bool {
	switch capability {
	case CapCreateProjects:
		return p.CreateProjects
	case CapEditProjects:
		return p.EditProjects
	case CapDeleteProjects:
		return p.DeleteProjects
	case CapDownloadReports:
		return p.DownloadReports
	case CapCreateUsers:
		return p.CreateUsers
	case CapEditUsers:
		return p.EditUsers
	case CapDeleteUsers:
		return p.DeleteUsers
	case CapCreateTests:
		return p.CreateTests
	case CapEditTests:
		return p.EditTests
	case CapDeleteTests:
		return p.DeleteTests
	case CapCreateStock:
		return p.CreateStock
	case CapEditStock:
		return p.EditStock
	case CapDeleteStock:
		return p.DeleteStock
	}
	return false
}

// FullPermissions concede todas as capacidades (conta bootstrap).
func FullPermissions() Permission {
	return Permission{
		CreateProjects:  true,
		EditProjects:    true,
		DeleteProjects:  true,
		DownloadReports: true,
		CreateUsers:     true,
		EditUsers:       true,
		DeleteUsers:     true,
		CreateTests:     true,
		EditTests:       true,
		DeleteTests:     true,
		CreateStock:     true,
		EditStock:       true,
		DeleteStock:     true,
	}
}
