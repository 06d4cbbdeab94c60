package ragweb

import (
	"context"

	v1 "github.com/VINKAS7/Rag-WebApp/api/ragweb/v1"
	"github.com/VINKAS7/Rag-WebApp/internal/dao"
	"github.com/VINKAS7/Rag-WebApp/internal/service"
)

func (c *ControllerV1) TemplateSetActive(ctx context.Context, req *v1.TemplateSetActiveReq) (res *v1.TemplateSetActiveRes, err error) {
	if err = service.Templates().SetActive(req.PromptTemplate); err != nil {
		return nil, err
	}
	return &v1.TemplateSetActiveRes{Message: "active template updated"}, nil
}

func (c *ControllerV1) TemplateResetActive(ctx context.Context, req *v1.TemplateResetActiveReq) (res *v1.TemplateResetActiveRes, err error) {
	service.Templates().Reset()
	return &v1.TemplateResetActiveRes{Message: "active template reset to default"}, nil
}

func (c *ControllerV1) TemplateMode(ctx context.Context, req *v1.TemplateModeReq) (res *v1.TemplateModeRes, err error) {
	return &v1.TemplateModeRes{Mode: service.Templates().Mode()}, nil
}

func (c *ControllerV1) TemplateUpsert(ctx context.Context, req *v1.TemplateUpsertReq) (res *v1.TemplateUpsertRes, err error) {
	err = dao.Template.Upsert(&dao.PromptTemplate{
		Name:           req.Name,
		PromptTemplate: req.PromptTemplate,
	})
	if err != nil {
		return nil, err
	}
	return &v1.TemplateUpsertRes{Message: "template saved"}, nil
}

func (c *ControllerV1) TemplateGet(ctx context.Context, req *v1.TemplateGetReq) (res *v1.TemplateGetRes, err error) {
	tpl, err := dao.Template.Get(req.Name)
	if err != nil {
		return nil, err
	}
	return &v1.TemplateGetRes{
		Name:           tpl.Name,
		PromptTemplate: tpl.PromptTemplate,
	}, nil
}

func (c *ControllerV1) TemplateList(ctx context.Context, req *v1.TemplateListReq) (res *v1.TemplateListRes, err error) {
	templates, err := dao.Template.List()
	if err != nil {
		return nil, err
	}

	items := make([]*v1.TemplateItem, 0, len(templates))
	for _, tpl := range templates {
		items = append(items, &v1.TemplateItem{
			Name:           tpl.Name,
			PromptTemplate: tpl.PromptTemplate,
		})
	}
	return &v1.TemplateListRes{Templates: items}, nil
}

func (c *ControllerV1) TemplateDelete(ctx context.Context, req *v1.TemplateDeleteReq) (res *v1.TemplateDeleteRes, err error) {
	if err = dao.Template.Delete(req.Name); err != nil {
		return nil, err
	}
	return &v1.TemplateDeleteRes{Message: "template deleted"}, nil
}
