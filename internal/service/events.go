/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package service

// EventPublisher broadcasts configuration change notifications to connected
// clients. Services treat a nil publisher as a no-op so they can be
// constructed without the websocket hub in tests.
type EventPublisher interface {
	Publish(eventType, configID string)
}

// Event types published by the services
const (
	EventGatewayCreated     = "gateway.created"
	EventGatewayUpdated     = "gateway.updated"
	EventGatewayDeleted     = "gateway.deleted"
	EventGatewayActivated   = "gateway.activated"
	EventGatewayDeactivated = "gateway.deactivated"
	EventGatewayImported    = "gateway.imported"
	EventEndpointCreated    = "endpoint.created"
	EventEndpointUpdated    = "endpoint.updated"
	EventEndpointDeleted    = "endpoint.deleted"
	EventEndpointsReordered = "endpoints.reordered"
)

func publish(publisher EventPublisher, eventType, configID string) {
	if publisher != nil {
		publisher.Publish(eventType, configID)
	}
}
