package handlers

import (
	"myregistry/domain"
)

func toInstanceInfo(i domain.ServiceInstance) InstanceInfo {
	return InstanceInfo{
		InstanceId:    i.InstanceID,
		ServiceName:   i.ServiceName,
		BaseUrl:       i.BaseURL,
		RegisteredAt:  i.RegisteredAt.UTC(),
		LastHeartbeat: i.LastHeartbeat.UTC(),
	}
}

// toServiceListResponse converts one service's active instances to API response.
func toServiceListResponse(serviceName string, instances []domain.ServiceInstance) ServiceListResponse {
	out := make([]InstanceInfo, 0, len(instances))
	for _, i := range instances {
		out = append(out, toInstanceInfo(i))
	}
	return ServiceListResponse{ServiceName: serviceName, Instances: out, Count: len(out)}
}

func toAllServicesResponse(all map[string][]domain.ServiceInstance) AllServicesResponse {
	out := make(AllServicesResponse, len(all))
	for name, instances := range all {
		out[name] = toServiceListResponse(name, instances)
	}
	return out
}

func toRegistryStatusResponse(stats domain.RegistryStats) RegistryStatusResponse {
	services := stats.Services
	if services == nil {
		services = map[string]int{}
	}
	return RegistryStatusResponse{
		Status:         "ok",
		TotalServices:  stats.TotalServices,
		TotalInstances: stats.TotalInstances,
		Services:       services,
	}
}
