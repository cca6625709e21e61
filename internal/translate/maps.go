package translate

// Colunas maps the source CSV schema to the Portuguese column names used by
// the analytical table and the UI.
var Colunas = map[string]string{
	"work_year":          "ano",
	"experience_level":   "senioridade",
	"employment_type":    "contrato",
	"job_title":          "cargo",
	"salary":             "salario",
	"salary_currency":    "usd",
	"salary_in_usd":      "salario_usd",
	"employee_residence": "residencia",
	"remote_ratio":       "remota",
	"company_location":   "empresa",
	"company_size":       "tamanho_empresa",
}

// Senioridade maps experience-level codes to display labels.
var Senioridade = map[string]string{
	"EN": "junior",
	"MI": "Pleno",
	"SE": "Senior",
	"EX": "executivo",
}

// Contrato maps employment-type codes to display labels.
var Contrato = map[string]string{
	"FT": "Tempo Integral",
	"PT": "Meio Período",
	"CT": "Contrato",
	"FL": "Freelancer",
}

// TamanhoEmpresa maps company-size codes to display labels.
var TamanhoEmpresa = map[string]string{
	"S": "Pequena",
	"M": "Média",
	"L": "Grande",
}

// Remota maps the remote-ratio percentage to a work-mode label.
var Remota = map[int]string{
	0:   "Presencial",
	50:  "Híbrido",
	100: "Remoto",
}

// Cargos translates the most common job titles. Exact match only; titles not
// listed here keep their original value.
var Cargos = map[string]string{
	"Data Scientist":                        "Cientista de Dados",
	"Data Engineer":                         "Engenheiro de Dados",
	"Data Analyst":                          "Analista de Dados",
	"Machine Learning Engineer":             "Engenheiro de Machine Learning",
	"Research Scientist":                    "Cientista de Pesquisa",
	"Data Science Manager":                  "Gerente de Ciência de Dados",
	"Data Architect":                        "Arquiteto de Dados",
	"Analytics Engineer":                    "Engenheiro de Analytics",
	"Business Intelligence Developer":       "Desenvolvedor de Business Intelligence",
	"Data Science Consultant":               "Consultor de Ciência de Dados",
	"Head of Data":                          "Diretor de Dados",
	"Principal Data Scientist":              "Cientista de Dados Principal",
	"ML Engineer":                           "Engenheiro de ML",
	"Applied Scientist":                     "Cientista Aplicado",
	"Research Team Lead":                    "Líder de Equipe de Pesquisa",
	"Analytics Engineering Manager":         "Gerente de Engenharia de Analytics",
	"Data Science Tech Lead":                "Líder Técnico de Ciência de Dados",
	"Applied AI ML Lead":                    "Líder de IA e ML Aplicados",
	"Head of Applied AI":                    "Diretor de IA Aplicada",
	"Head of Machine Learning":              "Diretor de Machine Learning",
	"Machine Learning Performance Engineer": "Engenheiro de Performance de ML",
	"Director of Product Management":        "Diretor de Gestão de Produtos",
	"Engineering Manager":                   "Gerente de Engenharia",
	"AWS Data Architect":                    "Arquiteto de Dados AWS",
}

// CargoCientistaDados is the translated title of the role highlighted on the
// country map.
const CargoCientistaDados = "Cientista de Dados"

// OrdemSenioridade is the display order for seniority labels, from junior to
// executive.
var OrdemSenioridade = []string{"junior", "Pleno", "Senior", "executivo"}
