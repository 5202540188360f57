package ecommerceclient

import (
	"context"

	ecommercedomain "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce/domain"
)

func (c *EcommerceClient) GetMonthlyTotalSales(ctx context.Context) ([]ecommercedomain.MonthlySales, error) {
	var response []ecommercedomain.MonthlySales
	if err := c.getJSON(ctx, totalSalesPath, &response); err != nil {
		return nil, err
	}

	return response, nil
}
