package validation

// Field names as exposed to clients in error mappings.
const (
	FieldIndividualTaxID   = "cpf"
	FieldOrganizationTaxID = "cnpj"
	FieldName              = "nome"
	FieldLegalName         = "razaoSocial"
	FieldTradeName         = "nomeFantasia"
	FieldBirthDate         = "dataNascimento"
	FieldPhone             = "telefone"
	FieldPostalCode        = "cep"
	FieldEmail             = "email"
	FieldAddress           = "endereco"
)

// Format failures.
const (
	MsgInvalidIndividualTaxID   = "CPF inválido"
	MsgInvalidOrganizationTaxID = "CNPJ inválido"
	MsgInvalidName              = "Nome inválido"
	MsgInvalidLegalName         = "Razão Social inválida"
	MsgInvalidTradeName         = "Nome Fantasia inválido"
	MsgInvalidBirthDate         = "Data inválida"
	MsgInvalidPhone             = "Telefone inválido"
	MsgInvalidPostalCode        = "CEP inválido"
	MsgInvalidEmail             = "E-mail inválido"
	MsgInvalidAddress           = "Endereço inválido"
)

// Uniqueness and lookup failures.
const (
	MsgIndividualTaxIDTaken   = "CPF já cadastrado"
	MsgOrganizationTaxIDTaken = "CNPJ já cadastrado"
	MsgEmailTaken             = "E-mail já cadastrado"
	MsgPostalCodeUnresolvable = "Não foi possível obter as coordenadas para este CEP"
)
