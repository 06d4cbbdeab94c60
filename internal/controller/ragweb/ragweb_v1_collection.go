package ragweb

import (
	"context"

	v1 "github.com/VINKAS7/Rag-WebApp/api/ragweb/v1"
	"github.com/VINKAS7/Rag-WebApp/internal/service"
)

func (c *ControllerV1) CollectionCreate(ctx context.Context, req *v1.CollectionCreateReq) (res *v1.CollectionCreateRes, err error) {
	if err = service.Collections().Create(ctx, req.CollectionName, req.Files, req.URLs); err != nil {
		return nil, err
	}
	return &v1.CollectionCreateRes{Message: "collection created"}, nil
}

func (c *ControllerV1) CollectionList(ctx context.Context, req *v1.CollectionListReq) (res *v1.CollectionListRes, err error) {
	names, err := service.Collections().List(ctx)
	if err != nil {
		return nil, err
	}
	return &v1.CollectionListRes{Collections: names}, nil
}

func (c *ControllerV1) CollectionDelete(ctx context.Context, req *v1.CollectionDeleteReq) (res *v1.CollectionDeleteRes, err error) {
	if err = service.Collections().Delete(ctx, req.CollectionName); err != nil {
		return nil, err
	}
	return &v1.CollectionDeleteRes{Message: "collection deleted"}, nil
}
