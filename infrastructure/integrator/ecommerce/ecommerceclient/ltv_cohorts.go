package ecommerceclient

import (
	"context"

	ecommercedomain "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce/domain"
)

func (c *EcommerceClient) GetLTVCohorts(ctx context.Context) (*ecommercedomain.CohortsResponse, error) {
	var response ecommercedomain.CohortsResponse
	if err := c.getJSON(ctx, ltvCohortsPath, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
