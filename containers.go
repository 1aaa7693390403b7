package staticize

import "staticize/shape"

// registerAllocLite installs the allocation-free owned container set. Owned
// containers are already longest-lived at the top level; resolution still
// recurses into their type parameters.
func registerAllocLite(r *Registry) {
	r.registerContainer(shape.ContainerBox)
	r.registerContainer(shape.ContainerOption)
	r.registerContainer(shape.ContainerResult)
	r.registerContainer(shape.ContainerAtomic)
}

// registerFullStd installs the containers that need a full standard runtime.
func registerFullStd(r *Registry) {
	r.registerContainer(shape.ContainerVec)
	r.registerContainer(shape.ContainerText)
	r.registerContainer(shape.ContainerMap)
}
