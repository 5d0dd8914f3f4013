/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import "sync"

// LatticeRuntime holds the runtime configuration for the Lattice server.
type LatticeRuntime struct {
	LatticeHome string `yaml:"lattice_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *LatticeRuntime
	once          sync.Once
)

// InitializeLatticeRuntime initializes the LatticeRuntime configuration.
func InitializeLatticeRuntime(latticeHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &LatticeRuntime{
			LatticeHome: latticeHome,
			Config:      *config,
		}
	})

	return nil
}

// GetLatticeRuntime returns the LatticeRuntime configuration.
func GetLatticeRuntime() *LatticeRuntime {
	if runtimeConfig == nil {
		panic("LatticeRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetLatticeRuntime resets the LatticeRuntime.
// This should only be used in tests to reset the singleton state.
func ResetLatticeRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
