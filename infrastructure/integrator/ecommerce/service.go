package ecommerce

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce/ecommerceclient"
	"github.com/vfg2006/ecom-dashboard/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// EcommerceIntegrator entrega as métricas da API externa já convertidas para o domínio
type EcommerceIntegrator interface {
	GetMonthlySales(ctx context.Context) ([]domain.MonthlyMetric, error)
	GetMonthlyNewCustomers(ctx context.Context) ([]domain.MonthlyMetric, error)
	GetRepeatCustomers(ctx context.Context) ([]domain.RepeatCustomerRecord, error)
	GetCityDistribution(ctx context.Context) ([]domain.CityAggregate, error)
	GetLifetimeValueCohorts(ctx context.Context) ([]domain.CohortRecord, error)
	Ping(ctx context.Context) error
}

type EcommerceService struct {
	Client ecommerceclient.Client
}

func New(client ecommerceclient.Client) EcommerceIntegrator {
	return &EcommerceService{
		Client: client,
	}
}

func (s *EcommerceService) GetMonthlySales(ctx context.Context) ([]domain.MonthlyMetric, error) {
	resp, err := s.Client.GetMonthlyTotalSales(ctx)
	if err != nil {
		return nil, err
	}

	metrics := make([]domain.MonthlyMetric, 0, len(resp))
	for _, item := range resp {
		metrics = append(metrics, domain.MonthlyMetric{
			Period: item.ID,
			Value:  item.TotalSales,
		})
	}

	logrus.WithField("periods", len(metrics)).Debug("ecommerce: vendas mensais recebidas")

	return metrics, nil
}

func (s *EcommerceService) GetMonthlyNewCustomers(ctx context.Context) ([]domain.MonthlyMetric, error) {
	resp, err := s.Client.GetMonthlyNewCustomers(ctx)
	if err != nil {
		return nil, err
	}

	metrics := make([]domain.MonthlyMetric, 0, len(resp))
	for _, item := range resp {
		metrics = append(metrics, domain.MonthlyMetric{
			Period: item.ID,
			Value:  float64(item.Count),
		})
	}

	return metrics, nil
}

func (s *EcommerceService) GetRepeatCustomers(ctx context.Context) ([]domain.RepeatCustomerRecord, error) {
	resp, err := s.Client.GetMonthlyRepeatCustomers(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.RepeatCustomerRecord, 0, len(resp))
	for _, item := range resp {
		records = append(records, domain.RepeatCustomerRecord{
			CustomerName:     item.CustomerDetails.FirstName,
			RepeatOrderCount: item.RepeatOrders,
		})
	}

	return records, nil
}

func (s *EcommerceService) GetCityDistribution(ctx context.Context) ([]domain.CityAggregate, error) {
	resp, err := s.Client.GetGeographicDistribution(ctx)
	if err != nil {
		return nil, err
	}

	cities := make([]domain.CityAggregate, 0, len(resp))
	for _, item := range resp {
		cities = append(cities, domain.CityAggregate{
			CityName:      item.ID,
			CustomerCount: item.Count,
		})
	}

	return cities, nil
}

func (s *EcommerceService) GetLifetimeValueCohorts(ctx context.Context) ([]domain.CohortRecord, error) {
	resp, err := s.Client.GetLTVCohorts(ctx)
	if err != nil {
		return nil, err
	}

	cohorts := make([]domain.CohortRecord, 0, len(resp.Data))
	for _, item := range resp.Data {
		cohorts = append(cohorts, domain.CohortRecord{
			CohortLabel:   item.Cohort,
			CustomerCount: item.CustomerCount,
		})
	}

	return cohorts, nil
}

func (s *EcommerceService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx)
}
