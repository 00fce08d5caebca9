package model

type ProjectRequest struct {
	Project string `params:"project" validate:"required,slug,max=32"`
}

type PageQuery struct {
	Variants string `query:"variants" validate:"omitempty,oneof=open closed"`
}
