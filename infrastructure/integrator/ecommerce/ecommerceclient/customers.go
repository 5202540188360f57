package ecommerceclient

import (
	"context"

	ecommercedomain "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce/domain"
)

func (c *EcommerceClient) GetMonthlyNewCustomers(ctx context.Context) ([]ecommercedomain.MonthlyCount, error) {
	var response []ecommercedomain.MonthlyCount
	if err := c.getJSON(ctx, newCustomersPath, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *EcommerceClient) GetMonthlyRepeatCustomers(ctx context.Context) ([]ecommercedomain.RepeatCustomer, error) {
	var response []ecommercedomain.RepeatCustomer
	if err := c.getJSON(ctx, repeatCustomersPath, &response); err != nil {
		return nil, err
	}

	return response, nil
}

// GetGeographicDistribution retorna as cidades ordenadas pela API por quantidade de clientes
func (c *EcommerceClient) GetGeographicDistribution(ctx context.Context) ([]ecommercedomain.MonthlyCount, error) {
	var response []ecommercedomain.MonthlyCount
	if err := c.getJSON(ctx, geographicDistributionPath, &response); err != nil {
		return nil, err
	}

	return response, nil
}
