/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	quadratic probing for resolving any hash collisions. Deleted entries are left behind
	as tombstones so that the probe sequences of other keys stay intact.
	More information about the technique can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Quadratic_probing
	02) https://en.wikipedia.org/wiki/Lazy_deletion
	03) https://www.cs.cmu.edu/~ckingsf/bioinfo-lectures/hashing.pdf
	The basic principal is:
	-----------------------
	1) Keep the table length prime and the table less than half full. Under those two
	   conditions the first (n+1)/2 positions of the sequence (h + i*i) mod n are all
	   distinct, so a free slot is always reachable
	2) Calculate the hash value and initial index h of the key
	3) Visit h, h+1, h+4, h+9, ... (mod n) until the key or an empty slot is found
	4) Removing a key turns its slot into a tombstone. Lookups probe straight through
	   tombstones, inserts remember the first one they pass and reuse it, but only once
	   the key is known not to live further along its sequence
	5) Growing rebuilds the table at the next prime >= twice the length and drops every
	   tombstone along the way
*/
package openaddr
