package handler

import (
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/validation"
	"agenda/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CreateIndividualRequest is the body of POST /api/pfisica.
type CreateIndividualRequest struct {
	TaxID      *string `json:"cpf" validate:"required,notblank"`
	Name       *string `json:"nome" validate:"required,notblank"`
	BirthDate  *string `json:"dataNascimento" validate:"required,notblank"`
	Phone      *string `json:"telefone" validate:"required,notblank"`
	PostalCode *string `json:"cep" validate:"required,notblank"`
	Email      *string `json:"email" validate:"required,notblank"`
	Address    *string `json:"endereco" validate:"required,notblank"`
}

func (CreateIndividualRequest) RequiredMessages() map[string]string {
	return map[string]string{
		validation.FieldIndividualTaxID: "CPF é obrigatório",
		validation.FieldName:            "Nome é obrigatório",
		validation.FieldBirthDate:       "Data de nascimento é obrigatória",
		validation.FieldPhone:           "Telefone é obrigatório",
		validation.FieldPostalCode:      "CEP é obrigatório",
		validation.FieldEmail:           "E-mail é obrigatório",
		validation.FieldAddress:         "Endereço é obrigatório",
	}
}

func (r *CreateIndividualRequest) toInput() *usecase.IndividualInput {
	return &usecase.IndividualInput{
		TaxID:      r.TaxID,
		Name:       r.Name,
		BirthDate:  r.BirthDate,
		Phone:      r.Phone,
		PostalCode: r.PostalCode,
		Email:      r.Email,
		Address:    r.Address,
	}
}

// CreateOrganizationRequest is the body of POST /api/pjuridica.
type CreateOrganizationRequest struct {
	TaxID      *string `json:"cnpj" validate:"required,notblank"`
	LegalName  *string `json:"razaoSocial" validate:"required,notblank"`
	TradeName  *string `json:"nomeFantasia" validate:"required,notblank"`
	Phone      *string `json:"telefone" validate:"required,notblank"`
	Email      *string `json:"email" validate:"required,notblank"`
	Address    *string `json:"endereco" validate:"required,notblank"`
	PostalCode *string `json:"cep" validate:"required,notblank"`
}

func (CreateOrganizationRequest) RequiredMessages() map[string]string {
	return map[string]string{
		validation.FieldOrganizationTaxID: "CNPJ é obrigatório",
		validation.FieldLegalName:         "Razão Social é obrigatório",
		validation.FieldTradeName:         "Nome Fantasia é obrigatório",
		validation.FieldPhone:             "Telefone é obrigatório",
		validation.FieldEmail:             "Email é obrigatório",
		validation.FieldAddress:           "Endereço é obrigatório",
		validation.FieldPostalCode:        "CEP é obrigatório",
	}
}

func (r *CreateOrganizationRequest) toInput() *usecase.OrganizationInput {
	return &usecase.OrganizationInput{
		TaxID:      r.TaxID,
		LegalName:  r.LegalName,
		TradeName:  r.TradeName,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		PostalCode: r.PostalCode,
	}
}

// IndividualPrefixQuery is the query of GET /api/pfisica/filtrar-por-cpf.
type IndividualPrefixQuery struct {
	Prefix string `query:"prefixo" validate:"cpf_prefix"`
}

// OrganizationPrefixQuery is the query of GET /api/pjuridica/filtrar-por-cnpj.
type OrganizationPrefixQuery struct {
	Prefix string `query:"prefixo" validate:"cnpj_prefix"`
}

// IndividualResponse is the wire form of an individual.
type IndividualResponse struct {
	TaxID       string            `json:"cpf"`
	Name        string            `json:"nome"`
	BirthDate   string            `json:"dataNascimento"`
	Phone       string            `json:"telefone"`
	PostalCode  string            `json:"cep"`
	Email       string            `json:"email"`
	Address     string            `json:"endereco"`
	Coordinates *geojson.Geometry `json:"coordenadas"`
	CreatedAt   time.Time         `json:"criadoEm"`
	UpdatedAt   time.Time         `json:"atualizadoEm"`
}

// OrganizationResponse is the wire form of an organization.
type OrganizationResponse struct {
	TaxID       string            `json:"cnpj"`
	LegalName   string            `json:"razaoSocial"`
	TradeName   string            `json:"nomeFantasia"`
	Phone       string            `json:"telefone"`
	Email       string            `json:"email"`
	Address     string            `json:"endereco"`
	PostalCode  string            `json:"cep"`
	Coordinates *geojson.Geometry `json:"coordenadas"`
	CreatedAt   time.Time         `json:"criadoEm"`
	UpdatedAt   time.Time         `json:"atualizadoEm"`
}

func newIndividualResponse(i *entity.Individual) *IndividualResponse {
	return &IndividualResponse{
		TaxID:       i.TaxID,
		Name:        i.Name,
		BirthDate:   i.BirthDate.Format(validation.BirthDateLayout),
		Phone:       i.Phone,
		PostalCode:  i.PostalCode,
		Email:       i.Email,
		Address:     i.Address,
		Coordinates: pointGeometry(i.Coordinates),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func newIndividualResponses(list []*entity.Individual) []*IndividualResponse {
	out := make([]*IndividualResponse, 0, len(list))
	for _, i := range list {
		out = append(out, newIndividualResponse(i))
	}

	return out
}

func newOrganizationResponse(o *entity.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		TaxID:       o.TaxID,
		LegalName:   o.LegalName,
		TradeName:   o.TradeName,
		Phone:       o.Phone,
		Email:       o.Email,
		Address:     o.Address,
		PostalCode:  o.PostalCode,
		Coordinates: pointGeometry(o.Coordinates),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func newOrganizationResponses(list []*entity.Organization) []*OrganizationResponse {
	out := make([]*OrganizationResponse, 0, len(list))
	for _, o := range list {
		out = append(out, newOrganizationResponse(o))
	}

	return out
}

// pointGeometry renders coordinates as a GeoJSON Point, or null when unknown.
func pointGeometry(p *orb.Point) *geojson.Geometry {
	if p == nil {
		return nil
	}

	return geojson.NewGeometry(*p)
}
