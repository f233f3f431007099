package handlers

import (
	"testing"
	"time"

	"myregistry/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceListResponse(t *testing.T) {
	at := time.Date(2026, 3, 1, 14, 0, 0, 0, time.FixedZone("CET", 3600))
	resp := toServiceListResponse("users", []domain.ServiceInstance{
		{InstanceID: "id-1", ServiceName: "users", BaseURL: "http://a", RegisteredAt: at, LastHeartbeat: at.Add(time.Second)},
		{InstanceID: "id-2", ServiceName: "users", BaseURL: "http://b", RegisteredAt: at, LastHeartbeat: at},
	})

	assert.Equal(t, "users", resp.ServiceName)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Instances, 2)
	assert.Equal(t, "id-1", resp.Instances[0].InstanceId)
	assert.Equal(t, "http://a", resp.Instances[0].BaseUrl)
	assert.Equal(t, time.UTC, resp.Instances[0].RegisteredAt.Location())
	assert.True(t, at.Add(time.Second).Equal(resp.Instances[0].LastHeartbeat))
	assert.Equal(t, "id-2", resp.Instances[1].InstanceId)
}

func TestToServiceListResponse_Empty(t *testing.T) {
	resp := toServiceListResponse("users", nil)
	assert.NotNil(t, resp.Instances)
	assert.Equal(t, 0, resp.Count)
}

func TestToAllServicesResponse(t *testing.T) {
	resp := toAllServicesResponse(map[string][]domain.ServiceInstance{
		"users": {{InstanceID: "u1"}},
		"posts": {{InstanceID: "p1"}, {InstanceID: "p2"}},
	})
	require.Len(t, resp, 2)
	assert.Equal(t, 1, resp["users"].Count)
	assert.Equal(t, 2, resp["posts"].Count)
	assert.Equal(t, "posts", resp["posts"].ServiceName)
}

func TestToRegistryStatusResponse(t *testing.T) {
	resp := toRegistryStatusResponse(domain.RegistryStats{})
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Services)

	resp = toRegistryStatusResponse(domain.RegistryStats{TotalServices: 1, TotalInstances: 3, Services: map[string]int{"users": 3}})
	assert.Equal(t, 1, resp.TotalServices)
	assert.Equal(t, 3, resp.TotalInstances)
	assert.Equal(t, map[string]int{"users": 3}, resp.Services)
}
