package ragweb

import (
	"context"

	v1 "github.com/VINKAS7/Rag-WebApp/api/ragweb/v1"
	"github.com/VINKAS7/Rag-WebApp/internal/service"
)

func (c *ControllerV1) ModelList(ctx context.Context, req *v1.ModelListReq) (res *v1.ModelListRes, err error) {
	models, err := service.Models().ListModels(ctx, req.Provider)
	if err != nil {
		return nil, err
	}
	return &v1.ModelListRes{Models: models}, nil
}
